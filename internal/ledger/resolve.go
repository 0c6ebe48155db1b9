package ledger

import "strings"

// MatchKind reports how a transaction was attributed to an account.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchByID
	MatchByName
)

// Resolver decides whether a transaction belongs to one account. The id
// match wins; the case-insensitive name match exists for records that only
// carry a copied name. Two accounts sharing a name will both claim a
// name-only transaction; the fallback hook makes that observable instead
// of silent.
type Resolver struct {
	AccountID   string
	AccountName string

	// OnFallback fires whenever a transaction is attributed by name only.
	// Optional; nil means no audit.
	OnFallback func(docKind, docID string)
}

// Resolve matches a transaction's account id and denormalized name against
// the resolver's account. docKind/docID identify the transaction for the
// audit hook.
func (r *Resolver) Resolve(txAccountID, txAccountName, docKind, docID string) MatchKind {
	if txAccountID != "" {
		if txAccountID == r.AccountID {
			return MatchByID
		}
		return MatchNone
	}

	if txAccountName != "" && strings.EqualFold(txAccountName, r.AccountName) {
		if r.OnFallback != nil {
			r.OnFallback(docKind, docID)
		}
		return MatchByName
	}

	return MatchNone
}

// Matches is the boolean view of Resolve.
func (r *Resolver) Matches(txAccountID, txAccountName, docKind, docID string) bool {
	return r.Resolve(txAccountID, txAccountName, docKind, docID) != MatchNone
}
