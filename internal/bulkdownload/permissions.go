package bulkdownload

import (
	"context"
	"fmt"
	"time"

	"github.com/rohits-web03/cellportal/internal/models"
)

// PermissionResult partitions requested accessions. Every accession lands
// in exactly one list.
type PermissionResult struct {
	Permitted       []string `json:"permitted"`
	Forbidden       []string `json:"forbidden"`
	LacksAcceptance []string `json:"lacks_acceptance"`
}

func (r PermissionResult) Allowed() bool {
	return len(r.Forbidden) == 0 && len(r.LacksAcceptance) == 0
}

func (r PermissionResult) Err() error {
	if r.Allowed() {
		return nil
	}
	return &PermissionError{Forbidden: r.Forbidden, LacksAcceptance: r.LacksAcceptance}
}

type PermissionResolver struct {
	access StudyAccess
	now    func() time.Time
}

func NewPermissionResolver(access StudyAccess) *PermissionResolver {
	return &PermissionResolver{access: access, now: time.Now}
}

// Resolve checks view permission first; only viewable studies are checked
// for an unaccepted download agreement.
func (p *PermissionResolver) Resolve(ctx context.Context, user *models.User, accessions []string) (PermissionResult, error) {
	result := PermissionResult{
		Permitted:       []string{},
		Forbidden:       []string{},
		LacksAcceptance: []string{},
	}
	accessions = dedupe(accessions)
	if len(accessions) == 0 {
		return result, nil
	}

	viewable, err := p.access.ViewableAccessions(ctx, user, accessions)
	if err != nil {
		return result, fmt.Errorf("load viewable studies: %w", err)
	}
	agreements, err := p.access.ActiveAgreementAccessions(ctx, accessions, p.now())
	if err != nil {
		return result, fmt.Errorf("load download agreements: %w", err)
	}
	canView := toSet(viewable)
	needsAgreement := toSet(agreements)

	for _, accession := range accessions {
		if _, ok := canView[accession]; !ok {
			result.Forbidden = append(result.Forbidden, accession)
			continue
		}
		if _, ok := needsAgreement[accession]; ok {
			accepted, err := p.access.HasAcceptedAgreement(ctx, accession, user.Email)
			if err != nil {
				return result, fmt.Errorf("load agreement acceptance for %s: %w", accession, err)
			}
			if !accepted {
				result.LacksAcceptance = append(result.LacksAcceptance, accession)
				continue
			}
		}
		result.Permitted = append(result.Permitted, accession)
	}
	return result, nil
}

// Check resolves accessions and fails with a *PermissionError unless all of
// them are permitted.
func (p *PermissionResolver) Check(ctx context.Context, user *models.User, accessions []string) error {
	result, err := p.Resolve(ctx, user, accessions)
	if err != nil {
		return err
	}
	return result.Err()
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
