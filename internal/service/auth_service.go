package service

import (
	"errors"
	"time"

	"hr-portal-backend/config"
	"hr-portal-backend/internal/domain"
	"hr-portal-backend/internal/model"
	"hr-portal-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	repo repository.EmployeeRepository
}

func NewAuthService(repo repository.EmployeeRepository) *AuthService {
	return &AuthService{repo: repo}
}

// Register creates a new employee account with the default role and leave
// balance. The email unique index is the duplicate guard.
func (s *AuthService) Register(name, email, password string) (*model.Employee, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &model.Employee{
		Name:         name,
		Email:        email,
		Password:     string(hashed),
		Role:         model.RoleEmployee,
		JoiningDate:  time.Now(),
		LeaveBalance: model.DefaultLeaveBalance,
	}
	if err := s.repo.Create(employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return employee, nil
}

// Profile loads the employee behind a principal, current leave balance
// included.
func (s *AuthService) Profile(employeeID uint) (*model.Employee, error) {
	return s.repo.GetByID(employeeID)
}

// Login checks the password and issues a 24h HS256 token carrying the
// employee id, email and role. Unknown email and wrong password return the
// same error on purpose.
func (s *AuthService) Login(email, password string) (string, *model.Employee, error) {
	employee, err := s.repo.GetByEmail(email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"employee_id": employee.ID,
		"email":       employee.Email,
		"role":        employee.Role,
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.JWTSecret())
	if err != nil {
		return "", nil, err
	}
	return signed, employee, nil
}
