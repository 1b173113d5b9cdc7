package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Designation string

const (
	DesignationAdmin    Designation = "ADMIN"
	DesignationHR       Designation = "HR"
	DesignationTrainer  Designation = "TRAINER"
	DesignationEmployee Designation = "EMPLOYEE"
)

func (d Designation) Valid() bool {
	switch d {
	case DesignationAdmin, DesignationHR, DesignationTrainer, DesignationEmployee:
		return true
	}
	return false
}

// IsAdmin reports whether the designation may use the admin panel.
func (d Designation) IsAdmin() bool {
	return d == DesignationAdmin || d == DesignationHR
}

func ParseDesignation(s string) (Designation, error) {
	d := Designation(strings.ToUpper(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown designation %q", s)
	}
	return d, nil
}

// NormalizeEmployeeCode folds a code to its stored form: trimmed and lowercase.
func NormalizeEmployeeCode(code string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(code))
}

type Employee struct {
	EmployeeCode  string      `json:"employee_code" example:"emp001"`
	Name          string      `json:"name" example:"Asha Verma"`
	Designation   Designation `json:"designation" example:"EMPLOYEE"`
	DateOfBirth   string      `json:"date_of_birth,omitempty" example:"1995-04-12"`
	DateOfJoining string      `json:"date_of_joining,omitempty" example:"2023-01-02"`
	Password      string      `json:"-"`
}

type LoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type EmployeeCreatePayload struct {
	EmployeeCode  string `json:"employee_code" validate:"required,max=32"`
	Name          string `json:"name" validate:"required,max=100"`
	Designation   string `json:"designation" validate:"required,designation"`
	DateOfBirth   string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	DateOfJoining string `json:"date_of_joining" validate:"omitempty,datetime=2006-01-02"`
	Password      string `json:"password" validate:"required,min=6"`
}

type EmployeeUpdatePayload struct {
	Name          string `json:"name,omitempty" validate:"omitempty,max=100"`
	Designation   string `json:"designation,omitempty" validate:"omitempty,designation"`
	DateOfBirth   string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	DateOfJoining string `json:"date_of_joining,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Password      string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type ChangePasswordPayload struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}
