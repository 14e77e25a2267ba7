package database

import (
	"fmt"
	"testing"
	"time"

	"fleet-admin/internal/config"
	"fleet-admin/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a fresh in-memory SQLite database with the schema migrated
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

func CreateTestCustomer(t *testing.T, db *DB, name string) *models.Customer {
	t.Helper()

	customer := &models.Customer{
		CustomerName:    name,
		CustomerClass:   "fleet",
		ReferenceNumber: gofakeit.Numerify("REF-######"),
		Status:          models.CustomerStatusActive,
	}

	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("failed to create test customer: %v", err)
	}

	return customer
}

// CreateTestAccount creates a live account. A nil parent makes a root account.
func CreateTestAccount(t *testing.T, db *DB, customerID int64, name string, parentID *int64) *models.Account {
	t.Helper()

	account := &models.Account{
		CustomerID:      customerID,
		ParentAccountID: parentID,
		AccountName:     name,
		AccountNumber:   gofakeit.Numerify("AC########"),
		AccountType:     "fleet",
		Status:          models.AccountStatusActive,
	}

	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}

	return account
}

// SoftDeleteTestAccount flags an account as deleted
func SoftDeleteTestAccount(t *testing.T, db *DB, account *models.Account) {
	t.Helper()

	if err := db.Model(account).Update("is_deleted", true).Error; err != nil {
		t.Fatalf("failed to soft delete account: %v", err)
	}
	account.IsDeleted = true
}

// CreateTestUser creates a customer user assigned to accountIDs
func CreateTestUser(t *testing.T, db *DB, customerID int64, email string, accountIDs ...int64) *models.User {
	t.Helper()

	user := &models.User{
		CustomerID:     customerID,
		FirstName:      gofakeit.FirstName(),
		LastName:       gofakeit.LastName(),
		Email:          email,
		PhoneNumber:    gofakeit.Phone(),
		Designation:    gofakeit.JobTitle(),
		Status:         models.UserStatusActive,
		IsCustomerUser: true,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	AssignTestAccounts(t, db, user, accountIDs...)

	return user
}

// AssignTestAccounts adds accountIDs to the user's assignment
func AssignTestAccounts(t *testing.T, db *DB, user *models.User, accountIDs ...int64) {
	t.Helper()

	for _, id := range accountIDs {
		if err := db.Create(&models.UserAccount{UserID: user.UserID, AccountID: id}).Error; err != nil {
			t.Fatalf("failed to assign account %d: %v", id, err)
		}
		user.AssignedAccountIDs = append(user.AssignedAccountIDs, id)
	}
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	tables := []string{
		"user_accounts",
		"accounts",
		"users",
		"user_roles",
		"customers",
	}

	for _, table := range tables {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
