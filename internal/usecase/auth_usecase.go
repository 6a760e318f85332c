package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"attendance-backend/internal/model"
	"attendance-backend/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthUsecase struct {
	employees repository.EmployeeRepository
	secret    []byte
	tokenTTL  time.Duration
}

func NewAuthUsecase(employees repository.EmployeeRepository, secret []byte) *AuthUsecase {
	return &AuthUsecase{employees: employees, secret: secret, tokenTTL: 24 * time.Hour}
}

// Login verifies the credentials and returns a signed access token carrying
// the employee id and role.
func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, *model.Employee, error) {
	employee, err := u.employees.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !employee.IsActive {
		return "", nil, ErrEmployeeInactive
	}

	claims := jwt.MapClaims{
		"employee_id": employee.EmployeeID,
		"name":        employee.Name,
		"role":        employee.Role,
		"exp":         time.Now().Add(u.tokenTTL).Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return "", nil, err
	}

	return token, employee, nil
}
