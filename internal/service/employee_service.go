package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/andrewarnaud1/mymanager/internal/dto"
	"github.com/andrewarnaud1/mymanager/internal/model"
	"github.com/andrewarnaud1/mymanager/internal/repository"
)

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already in use")
	ErrAlreadyInternal    = errors.New("employee is already internal")
	ErrCredentialRequired = errors.New("internal employee requires a credential")
)

const searchResultLimit = 10

// EmployeeService is the staff registry.
//
// It maintains the mode invariant: an internal employee always carries a
// linked account, an external employee never does. Credential uniqueness is
// checked before any write so a rejected conversion leaves no partial state.
type EmployeeService interface {
	Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	Get(ctx context.Context, id string) (*dto.EmployeeResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error)
	ConvertToInternal(ctx context.Context, id string, req *dto.ConvertEmployeeRequest) (*dto.EmployeeResponse, error)
	SetActive(ctx context.Context, id string, active *bool) (*dto.EmployeeResponse, error)
	List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, dto.EmployeeStats, error)
	SearchActive(ctx context.Context, term string) ([]dto.EmployeeResponse, error)
}

type employeeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEmployeeService creates the EmployeeService.
func NewEmployeeService(repo *repository.Repository, logger *zap.Logger) EmployeeService {
	return &employeeService{repo: repo, logger: logger}
}

func (s *employeeService) Create(ctx context.Context, req *dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee := &model.Employee{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		IsActive:  true,
	}
	if req.HireDate != "" {
		hireDate, err := time.Parse(dto.DateFormat, req.HireDate)
		if err != nil {
			return nil, err
		}
		employee.HireDate = &hireDate
	}

	if req.Type == dto.EmployeeTypeExternal {
		employee.IsExternal = true
		if err := s.repo.Employee.Create(ctx, employee); err != nil {
			s.logger.Error("create employee failed", zap.Error(err))
			return nil, err
		}
		resp := toEmployeeResponse(employee)
		return &resp, nil
	}

	// internal: provision the login account first
	if req.Credential == nil {
		return nil, ErrCredentialRequired
	}
	account, err := s.provisionAccount(ctx, req.Credential)
	if err != nil {
		return nil, err
	}

	employee.IsExternal = false
	employee.AccountID = &account.AccountID
	employee.Account = account
	if err := s.repo.Employee.Create(ctx, employee); err != nil {
		s.logger.Error("create employee failed", zap.Error(err))
		return nil, err
	}

	resp := toEmployeeResponse(employee)
	return &resp, nil
}

// provisionAccount validates credential uniqueness and creates the account.
// A uniqueness failure happens before any write, so callers keep their
// previous state on error.
func (s *employeeService) provisionAccount(ctx context.Context, cred *dto.CredentialRequest) (*model.Account, error) {
	if _, err := s.repo.Account.GetByUsername(ctx, cred.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("username lookup failed", zap.Error(err))
		return nil, err
	}

	if cred.Email != "" {
		if _, err := s.repo.Account.GetByEmail(ctx, cred.Email); err == nil {
			return nil, ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("email lookup failed", zap.Error(err))
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		Username:     cred.Username,
		Email:        cred.Email,
		PasswordHash: string(hash),
		Role:         cred.Role,
		IsActive:     true,
	}
	if err := s.repo.Account.Create(ctx, account); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost a race on the unique username/email index
			return nil, ErrUsernameTaken
		}
		s.logger.Error("create account failed", zap.Error(err))
		return nil, err
	}
	return account, nil
}

func (s *employeeService) Get(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	employee, err := s.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toEmployeeResponse(employee)
	return &resp, nil
}

func (s *employeeService) Update(ctx context.Context, id string, req *dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := s.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.HireDate != nil {
		if *req.HireDate == "" {
			employee.HireDate = nil
		} else {
			hireDate, err := time.Parse(dto.DateFormat, *req.HireDate)
			if err != nil {
				return nil, err
			}
			employee.HireDate = &hireDate
		}
	}

	if err := s.repo.Employee.Update(ctx, employee); err != nil {
		s.logger.Error("update employee failed", zap.Error(err))
		return nil, err
	}

	resp := toEmployeeResponse(employee)
	return &resp, nil
}

func (s *employeeService) ConvertToInternal(ctx context.Context, id string, req *dto.ConvertEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := s.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	if !employee.IsExternal {
		return nil, ErrAlreadyInternal
	}

	account, err := s.provisionAccount(ctx, &req.CredentialRequest)
	if err != nil {
		// employee left untouched: still external, no account created
		return nil, err
	}

	employee.IsExternal = false
	employee.AccountID = &account.AccountID
	employee.Account = account
	if err := s.repo.Employee.Update(ctx, employee); err != nil {
		s.logger.Error("link account failed", zap.Error(err))
		return nil, err
	}

	resp := toEmployeeResponse(employee)
	return &resp, nil
}

// SetActive toggles or sets the active flag. A nil active flips the current
// value; setting the current value again is a no-op. Existing shifts of a
// deactivated employee stay in place; only new shift writes are rejected.
func (s *employeeService) SetActive(ctx context.Context, id string, active *bool) (*dto.EmployeeResponse, error) {
	employee, err := s.getEmployee(ctx, id)
	if err != nil {
		return nil, err
	}

	target := !employee.IsActive
	if active != nil {
		target = *active
	}

	if employee.IsActive != target {
		employee.IsActive = target
		if err := s.repo.Employee.Update(ctx, employee); err != nil {
			s.logger.Error("update employee failed", zap.Error(err))
			return nil, err
		}
	}

	resp := toEmployeeResponse(employee)
	return &resp, nil
}

func (s *employeeService) List(ctx context.Context, req *dto.EmployeeListRequest) ([]dto.EmployeeResponse, int64, dto.EmployeeStats, error) {
	var stats dto.EmployeeStats

	employees, total, err := s.repo.Employee.List(ctx, req.Status, req.Keyword, req.GetOffset(), req.GetPageSize())
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, 0, stats, err
	}

	counts, err := s.repo.Employee.Counts(ctx)
	if err != nil {
		s.logger.Error("count employees failed", zap.Error(err))
		return nil, 0, stats, err
	}
	stats = dto.EmployeeStats{
		Total:    counts.Total,
		Internal: counts.Internal,
		External: counts.External,
		Inactive: counts.Inactive,
	}

	list := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		list = append(list, toEmployeeResponse(&employees[i]))
	}
	return list, total, stats, nil
}

func (s *employeeService) SearchActive(ctx context.Context, term string) ([]dto.EmployeeResponse, error) {
	employees, err := s.repo.Employee.SearchActive(ctx, term, searchResultLimit)
	if err != nil {
		s.logger.Error("search employees failed", zap.Error(err))
		return nil, err
	}

	list := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		list = append(list, toEmployeeResponse(&employees[i]))
	}
	return list, nil
}

func (s *employeeService) getEmployee(ctx context.Context, id string) (*model.Employee, error) {
	employee, err := s.repo.Employee.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("employee lookup failed", zap.Error(err))
		return nil, err
	}
	return employee, nil
}
