package awards

import (
	"context"
	"fmt"

	models "github.com/glkeru/hamawards/internal/models"
	"golang.org/x/sync/errgroup"
)

// Награды, условиям которых соответствует одна связь
func (s *AwardEngineService) ContactAwards(ctx context.Context, userID string, contactID int64) ([]models.Membership, error) {
	ctx, span := tracer.Start(ctx, "ContactAwards")
	defer span.End()

	var (
		contact models.Contact
		awards  []models.Award
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := s.contacts.GetContact(gctx, userID, contactID)
		if err != nil {
			return fmt.Errorf("get contact %d: %w", contactID, err)
		}
		contact = c
		return nil
	})
	g.Go(func() error {
		a, err := s.awards.ListApprovedAwards(gctx)
		if err != nil {
			return fmt.Errorf("list approved awards: %w", err)
		}
		awards = a
		return nil
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	result := []models.Membership{}
	for _, award := range awards {
		if award.Rules.IsLegacy() {
			continue
		}
		if Matches(&contact, award.Rules.Doc) {
			result = append(result, models.Membership{AwardID: award.ID, AwardName: award.Name})
		}
	}
	return result, nil
}

// Matches - связь проходит фильтры и ограничение по списку целей. Баллы и уровни не считаются
func Matches(c *models.Contact, doc *models.RuleDocument) bool {
	if !Accepts(c, doc) {
		return false
	}
	targets := ParseTargetList(doc.Targets.List)
	if len(targets) == 0 {
		return true
	}
	return inTargets(c, targetType(doc), targetIndex(targets))
}
