package seeder

import (
	"context"
	"fmt"
	"log"
	"time"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/password"
	util "Employee-Attendance-Portal/pkg/utils"
	"Employee-Attendance-Portal/repository"
)

// AdminAccount describes the HR account created on an empty users table.
type AdminAccount struct {
	Code     string
	Name     string
	Password string
}

// SeedAdmin creates the first HR account when no employee exists yet. With an
// empty password a random one is generated and logged once. It reports
// whether an account was created.
func SeedAdmin(employees *repository.EmployeeRepository, acct AdminAccount) (bool, error) {
	log.Println("🌱 Checking for an initial HR account...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := employees.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to count employees: %w", err)
	}
	if count > 0 {
		log.Println("✅ Employees already exist, seeding skipped.")
		return false, nil
	}

	plain := acct.Password
	generated := plain == ""
	if generated {
		plain, err = util.GenerateBase64Key(12)
		if err != nil {
			return false, err
		}
	}
	hashed, err := password.HashPassword(plain)
	if err != nil {
		return false, err
	}

	admin := &models.Employee{
		EmployeeCode: acct.Code,
		Name:         acct.Name,
		Designation:  models.DesignationHR,
		Password:     hashed,
	}
	if err := employees.Create(ctx, admin); err != nil {
		return false, fmt.Errorf("failed to create HR account: %w", err)
	}

	log.Printf("✔ HR account %s (%s) created.", admin.EmployeeCode, admin.Name)
	if generated {
		log.Printf("🔑 Generated password for %s: %s (change it after the first login)", admin.EmployeeCode, plain)
	}
	return true, nil
}
