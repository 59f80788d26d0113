package awards

import (
	"context"

	models "github.com/glkeru/hamawards/internal/models"
	"github.com/google/uuid"
)

//go:generate mockgen -destination=./../services/mock_storage_test.go -package=awards . AwardStorage,ContactStorage,ClaimStorage,CacheStorage
//go:generate mockgen -destination=./../api/mock_service_test.go -package=awards . AwardService,Catalogue,AwardStorage,ClaimStorage
//go:generate mockgen -destination=./../api/grpc/mock_service_test.go -package=grpc . AwardService
//go:generate mockgen -destination=./../external/rabbitmq/mock_service_test.go -package=awards . AwardService
//go:generate mockgen -destination=./../external/kafka/mock_importer_test.go -package=awards . LogbookImporter

type AwardService interface {
	Evaluate(ctx context.Context, userID string, awardID uuid.UUID, includeQSOs bool) (*models.EvaluationResult, error)
	ContactAwards(ctx context.Context, userID string, contactID int64) ([]models.Membership, error)
	Claim(ctx context.Context, userID string, awardID uuid.UUID) (*models.Claim, error)
}

type Catalogue interface {
	SaveAward(ctx context.Context, award models.Award, actor string) (models.Award, error)
	AuditAward(ctx context.Context, awardID uuid.UUID, action string, reason string, actor string) error
	DeleteAward(ctx context.Context, awardID uuid.UUID, actor string) error
}

type AwardStorage interface {
	GetAward(ctx context.Context, awardID uuid.UUID) (models.Award, error)
	ListApprovedAwards(ctx context.Context) ([]models.Award, error)
	ListAllAwards(ctx context.Context) ([]models.Award, error)
	SaveAward(ctx context.Context, award models.Award) error
	DeleteAward(ctx context.Context, awardID uuid.UUID, creatorID string) error
}

type ContactStorage interface {
	ListContacts(ctx context.Context, userID string) ([]models.Contact, error)
	GetContact(ctx context.Context, userID string, contactID int64) (models.Contact, error)
	InsertContacts(ctx context.Context, userID string, contacts []models.Contact) (imported int, err error)
}

type ClaimStorage interface {
	ListClaimedTierNames(ctx context.Context, userID string, awardID uuid.UUID) ([]string, error)
	InsertClaim(ctx context.Context, claim models.Claim) error
	ListUserClaims(ctx context.Context, userID string) ([]models.Claim, error)
}

// LogbookImporter - загрузка журнала ADIF
type LogbookImporter interface {
	Import(ctx context.Context, userID string, text string) (parsed int, imported int, err error)
}

type CacheStorage interface {
	GetEvaluation(ctx context.Context, userID string, key string) ([]byte, error)
	SetEvaluation(ctx context.Context, userID string, key string, data []byte) error
	InvalidateUser(ctx context.Context, userID string) error
	// версия награды входит в ключ кэша, изменение награды увеличивает версию
	AwardVersion(ctx context.Context, awardID uuid.UUID) (int64, error)
	BumpAwardVersion(ctx context.Context, awardID uuid.UUID) error
}
