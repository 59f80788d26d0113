package awards

import (
	"context"
	"fmt"
	"strconv"

	"github.com/glkeru/hamawards/internal/adif"
	"github.com/glkeru/hamawards/internal/cty"
	interf "github.com/glkeru/hamawards/internal/interfaces"
	models "github.com/glkeru/hamawards/internal/models"
	"go.uber.org/zap"
)

type LogbookImportService struct {
	contacts interf.ContactStorage
	cache    interf.CacheStorage // nil - без кэша
	cty      *cty.DB
	plan     *adif.BandPlan
	logger   *zap.Logger
}

func NewImportService(contacts interf.ContactStorage, cache interf.CacheStorage, ctyDB *cty.DB, plan *adif.BandPlan, logger *zap.Logger) *LogbookImportService {
	if plan == nil {
		plan = adif.DefaultBandPlan()
	}
	return &LogbookImportService{contacts, cache, ctyDB, plan, logger}
}

// Загрузка журнала ADIF: parsed - разобрано записей, imported - добавлено новых
func (i *LogbookImportService) Import(ctx context.Context, userID string, text string) (parsed int, imported int, err error) {
	ctx, span := tracer.Start(ctx, "Import")
	defer span.End()

	if userID == "" {
		return 0, 0, fmt.Errorf("import: userId is required")
	}
	records := adif.Parse(text, i.plan)
	if len(records) == 0 {
		return 0, 0, nil
	}
	contacts := make([]models.Contact, 0, len(records))
	for _, rec := range records {
		contacts = append(contacts, i.ToContact(userID, rec))
	}

	imported, err = i.contacts.InsertContacts(ctx, userID, contacts)
	if err != nil {
		span.RecordError(err)
		return len(records), 0, fmt.Errorf("insert contacts: %w", err)
	}
	importedContactsTotal.Add(float64(imported))
	i.logger.Info("logbook imported",
		zap.String("user", userID),
		zap.Int("parsed", len(records)),
		zap.Int("imported", imported),
	)

	// связи изменились - кэш проверок устарел
	if imported > 0 && i.cache != nil {
		if err := i.cache.InvalidateUser(ctx, userID); err != nil {
			i.logger.Warn("cache invalidate", zap.String("service", "Import"), zap.Error(err))
		}
	}
	return len(records), imported, nil
}

// ToContact - связь из записи ADIF с определением DXCC
func (i *LogbookImportService) ToContact(userID string, rec adif.Record) models.Contact {
	return models.Contact{
		UserID:   userID,
		Callsign: rec["call"],
		Band:     rec["band"],
		Mode:     rec["mode"],
		QSODate:  rec["qso_date"],
		DXCC:     i.resolveDXCC(rec),
		Country:  rec["country"],
		Raw:      rec,
	}
}

// DXCC: поле country, затем dxcc (числовой код -> название), затем по позывному
func (i *LogbookImportService) resolveDXCC(rec adif.Record) string {
	if rec["country"] != "" {
		return rec["country"]
	}
	if code := rec["dxcc"]; code != "" {
		if _, err := strconv.Atoi(code); err == nil {
			if name, ok := i.cty.CountryByCode(code); ok {
				return name
			}
		}
		return code
	}
	return i.cty.Country(rec["call"])
}
