package employee

import (
	"context"
	"fmt"

	"github.com/gestionale-hr/hr-backend-go/internal/domain/employee"
	"github.com/gestionale-hr/hr-backend-go/internal/domain/user"
	"github.com/gestionale-hr/hr-backend-go/internal/pkg/validator"
	"github.com/gestionale-hr/hr-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

type EmployeeService struct {
	tx           postgresql.Transactor
	userRepo     user.Repository
	employeeRepo employee.Repository
}

func NewEmployeeService(tx postgresql.Transactor, userRepo user.Repository, employeeRepo employee.Repository) employee.Service {
	return &EmployeeService{
		tx:           tx,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
	}
}

// Create provisions the auth account and the profile in one transaction so a
// failed profile insert never leaves an orphan account.
func (s *EmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if _, err := s.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return employee.Employee{}, user.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.IsAdmin {
		role = user.RoleAdmin
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	var created employee.Employee
	err = s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		account, err := s.userRepo.Create(txCtx, user.User{
			Email:        req.Email,
			PasswordHash: string(hash),
			Role:         role,
		})
		if err != nil {
			return fmt.Errorf("failed to create user account: %w", err)
		}

		created, err = s.employeeRepo.Create(txCtx, employee.Employee{
			UserID:    account.ID,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			HireDate:  hireDate,
			IsActive:  true,
		})
		if err != nil {
			return fmt.Errorf("failed to create employee profile: %w", err)
		}

		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

func (s *EmployeeService) Get(ctx context.Context, id string) (employee.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *EmployeeService) GetByUserID(ctx context.Context, userID string) (employee.Employee, error) {
	return s.employeeRepo.GetByUserID(ctx, userID)
}

func (s *EmployeeService) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	return s.employeeRepo.List(ctx, filter)
}

func (s *EmployeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	if _, err := s.employeeRepo.GetByID(ctx, req.ID); err != nil {
		return employee.Employee{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return s.employeeRepo.GetByID(ctx, req.ID)
}
