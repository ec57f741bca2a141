package transfer

import (
	"github.com/amirhossein-jamali/transfer-processor/internal/domain/entity"
	errs "github.com/amirhossein-jamali/transfer-processor/internal/domain/error"
)

// RuleBlockedAccount names the invariant reported when the target account is blocked
const RuleBlockedAccount = "blocked_account"

// DefaultBlockedAccounts is used when no blocked accounts are configured
var DefaultBlockedAccounts = []string{"ex"}

// BlockedAccountPolicy rejects transfers whose target account is blocked
type BlockedAccountPolicy struct {
	blocked map[string]struct{}
}

// NewBlockedAccountPolicy creates a policy for the given account IDs
func NewBlockedAccountPolicy(ids []string) *BlockedAccountPolicy {
	blocked := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			blocked[id] = struct{}{}
		}
	}
	return &BlockedAccountPolicy{blocked: blocked}
}

// IsBlocked reports whether the account ID is blocked
func (p *BlockedAccountPolicy) IsBlocked(id string) bool {
	_, ok := p.blocked[id]
	return ok
}

// Check returns a BusinessInvariantError when the target account is blocked
func (p *BlockedAccountPolicy) Check(target *entity.Account) error {
	if p.IsBlocked(target.ID) {
		return errs.NewBusinessInvariantError(target.ID, RuleBlockedAccount)
	}
	return nil
}
