package repository

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"Employee-Attendance-Portal/models"
	"Employee-Attendance-Portal/pkg/tablestore"
)

var employeeColumns = []string{"employee_code", "name", "designation", "date_of_birth", "date_of_joining", "password"}

type EmployeeRepository struct {
	store tablestore.Store
}

func NewEmployeeRepository(store tablestore.Store) *EmployeeRepository {
	return &EmployeeRepository{store: store}
}

func decodeEmployee(r tablestore.Row) (models.Employee, bool) {
	code := models.NormalizeEmployeeCode(r["employee_code"])
	if code == "" {
		return models.Employee{}, false
	}
	return models.Employee{
		EmployeeCode:  code,
		Name:          cell(r, "name"),
		Designation:   models.Designation(strings.ToUpper(cell(r, "designation"))),
		DateOfBirth:   cell(r, "date_of_birth"),
		DateOfJoining: cell(r, "date_of_joining"),
		Password:      r["password"],
	}, true
}

func encodeEmployee(e models.Employee) tablestore.Row {
	return tablestore.Row{
		"employee_code":   e.EmployeeCode,
		"name":            e.Name,
		"designation":     string(e.Designation),
		"date_of_birth":   e.DateOfBirth,
		"date_of_joining": e.DateOfJoining,
		"password":        e.Password,
	}
}

func validateEmployee(e *models.Employee) error {
	e.EmployeeCode = models.NormalizeEmployeeCode(e.EmployeeCode)
	e.Name = strings.TrimSpace(e.Name)
	if e.EmployeeCode == "" || e.Name == "" {
		return fmt.Errorf("%w: employee code and name are required", ErrInvalidRecord)
	}
	if strings.ContainsAny(e.EmployeeCode, `/\`) || strings.Trim(e.EmployeeCode, ".") == "" {
		return fmt.Errorf("%w: employee code %q contains path characters", ErrInvalidRecord, e.EmployeeCode)
	}
	if !e.Designation.Valid() {
		return fmt.Errorf("%w: designation %q", ErrInvalidRecord, e.Designation)
	}
	return nil
}

func (r *EmployeeRepository) FindAll(ctx context.Context) ([]models.Employee, error) {
	return loadRows(ctx, r.store, tablestore.Users, decodeEmployee)
}

// FindAllSorted returns employees ordered by name, then code.
func (r *EmployeeRepository) FindAllSorted(ctx context.Context) ([]models.Employee, error) {
	employees, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(employees, func(i, j int) bool {
		ni, nj := strings.ToLower(employees[i].Name), strings.ToLower(employees[j].Name)
		if ni != nj {
			return ni < nj
		}
		return employees[i].EmployeeCode < employees[j].EmployeeCode
	})
	return employees, nil
}

// FindByCode returns nil, nil when no employee has the code.
func (r *EmployeeRepository) FindByCode(ctx context.Context, code string) (*models.Employee, error) {
	employees, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	code = models.NormalizeEmployeeCode(code)
	for i := range employees {
		if employees[i].EmployeeCode == code {
			return &employees[i], nil
		}
	}
	return nil, nil
}

// FindByLogin matches username against employee codes first, then names,
// both case-insensitively.
func (r *EmployeeRepository) FindByLogin(ctx context.Context, username string) (*models.Employee, error) {
	employees, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	key := models.NormalizeEmployeeCode(username)
	if key == "" {
		return nil, nil
	}
	for i := range employees {
		if employees[i].EmployeeCode == key {
			return &employees[i], nil
		}
	}
	for i := range employees {
		if strings.EqualFold(employees[i].Name, strings.TrimSpace(username)) {
			return &employees[i], nil
		}
	}
	return nil, nil
}

func (r *EmployeeRepository) Count(ctx context.Context) (int, error) {
	employees, err := r.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(employees), nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e *models.Employee) error {
	if err := validateEmployee(e); err != nil {
		return err
	}
	employees, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	for _, existing := range employees {
		if existing.EmployeeCode == e.EmployeeCode {
			return fmt.Errorf("%w: %s", ErrDuplicateEmployee, e.EmployeeCode)
		}
	}
	employees = append(employees, *e)
	return r.saveAll(ctx, employees)
}

// Update replaces the employee with the same code.
func (r *EmployeeRepository) Update(ctx context.Context, e *models.Employee) error {
	if err := validateEmployee(e); err != nil {
		return err
	}
	employees, err := r.FindAll(ctx)
	if err != nil {
		return err
	}
	for i := range employees {
		if employees[i].EmployeeCode == e.EmployeeCode {
			employees[i] = *e
			return r.saveAll(ctx, employees)
		}
	}
	return fmt.Errorf("%w: %s", ErrEmployeeNotFound, e.EmployeeCode)
}

func (r *EmployeeRepository) saveAll(ctx context.Context, employees []models.Employee) error {
	ch, err := stageRows(ctx, r.store, tablestore.Users, employeeColumns, employees, decodeEmployee, encodeEmployee, nil)
	if err != nil {
		return err
	}
	if err := r.store.Save(ctx, ch.Name, ch.Table); err != nil {
		return fmt.Errorf("failed to save employees: %w", err)
	}
	return nil
}
