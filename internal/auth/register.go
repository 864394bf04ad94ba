package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/carnamarket/backend/internal/groups"
	"github.com/carnamarket/backend/internal/users"
	pkgAuth "github.com/carnamarket/backend/pkg/auth"
	"github.com/carnamarket/backend/pkg/config"
	"github.com/carnamarket/backend/pkg/db"
	"github.com/carnamarket/backend/pkg/db/models"
	pkgerrors "github.com/carnamarket/backend/pkg/errors"
	"github.com/carnamarket/backend/pkg/security"
)

// Fallback group created when a registration arrives and no carnival group
// exists yet.
const (
	defaultGroupName = "Default Group"
	defaultGroupCity = "Brussels"
)

// RegisterService handles the signup transaction.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type registerUserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, dto users.CreateUserDTO) (*models.User, error)
}

type registerGroupRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.CarnivalGroup, error)
	FindFirst(ctx context.Context) (*models.CarnivalGroup, error)
	FindOrCreate(ctx context.Context, dto groups.CreateGroupDTO) (*models.CarnivalGroup, bool, error)
}

// RegisterServiceParams packages the dependencies for the registration flow.
// The factories exist so tests can swap repositories; production wiring only
// sets DB and the configs.
type RegisterServiceParams struct {
	DB               *db.Client
	TxRunner         txRunner
	UserRepoFactory  func(tx *gorm.DB) registerUserRepository
	GroupRepoFactory func(tx *gorm.DB) registerGroupRepository
	PasswordConfig   config.PasswordConfig
	JWTConfig        config.JWTConfig
}

type registerService struct {
	tx          txRunner
	userRepo    func(tx *gorm.DB) registerUserRepository
	groupRepo   func(tx *gorm.DB) registerGroupRepository
	passwordCfg config.PasswordConfig
	jwtCfg      config.JWTConfig
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	runner := params.TxRunner
	if runner == nil {
		if params.DB == nil {
			return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
		}
		runner = params.DB
	}
	userFactory := params.UserRepoFactory
	if userFactory == nil {
		userFactory = func(tx *gorm.DB) registerUserRepository {
			return users.NewRepository(tx)
		}
	}
	groupFactory := params.GroupRepoFactory
	if groupFactory == nil {
		groupFactory = func(tx *gorm.DB) registerGroupRepository {
			return groups.NewRepository(tx)
		}
	}
	return &registerService{
		tx:          runner,
		userRepo:    userFactory,
		groupRepo:   groupFactory,
		passwordCfg: params.PasswordConfig,
		jwtCfg:      params.JWTConfig,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	var (
		user  *models.User
		group *models.CarnivalGroup
	)
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := s.userRepo(tx)
		groupRepo := s.groupRepo(tx)

		if _, err := userRepo.FindByEmail(ctx, email); err == nil {
			return pkgerrors.New(pkgerrors.CodeConflict, "Email already registered")
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}

		group, err = resolveGroup(ctx, groupRepo, req.CarnivalGroupID)
		if err != nil {
			return err
		}

		user, err = userRepo.Create(ctx, users.CreateUserDTO{
			Email:           email,
			PasswordHash:    passwordHash,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Phone:           req.Phone,
			Address:         req.Address,
			City:            req.City,
			PostalCode:      req.PostalCode,
			CarnivalGroupID: group.ID,
		})
		if err != nil {
			// A concurrent signup can slip past the precheck and hit the
			// unique index instead.
			if db.IsUniqueViolation(err) {
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, "Email already registered")
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now().UTC(), user.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	user.CarnivalGroup = group
	return &AuthResponse{
		Token:         token,
		User:          users.FromModel(user),
		CarnivalGroup: groupSummary(group),
	}, nil
}

// resolveGroup picks the new member's carnival group: the requested one when
// it exists, otherwise the first group on record, otherwise a freshly created
// default group.
func resolveGroup(ctx context.Context, repo registerGroupRepository, requested *uuid.UUID) (*models.CarnivalGroup, error) {
	if requested != nil && *requested != uuid.Nil {
		group, err := repo.FindByID(ctx, *requested)
		if err == nil {
			return group, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load carnival group")
		}
	}

	group, err := repo.FindFirst(ctx)
	if err == nil {
		return group, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load fallback group")
	}

	created, _, err := repo.FindOrCreate(ctx, groups.CreateGroupDTO{
		Name:       defaultGroupName,
		City:       defaultGroupCity,
		Country:    "Belgium",
		IsVerified: true,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create default group")
	}
	return created, nil
}
