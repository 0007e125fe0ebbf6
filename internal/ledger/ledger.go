package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MrJamesThe3rd/ledgr/internal/money"
)

// Side is the side of the books an amount sits on.
type Side string

const (
	Debit  Side = "DEBIT"
	Credit Side = "CREDIT"
)

func (s Side) Valid() bool {
	return s == Debit || s == Credit
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Debit {
		return Credit
	}

	return Debit
}

// Signed returns amount positive for debits and negative for credits.
func (s Side) Signed(amount decimal.Decimal) decimal.Decimal {
	if s == Credit {
		return amount.Neg()
	}

	return amount
}

// Category classifies a ledger or group in the chart of accounts.
type Category string

const (
	CategoryCurrentAsset     Category = "CURRENT_ASSET"
	CategoryFixedAsset       Category = "FIXED_ASSET"
	CategoryInvestment       Category = "INVESTMENT"
	CategoryCurrentLiability Category = "CURRENT_LIABILITY"
	CategoryLoan             Category = "LOAN"
	CategoryCapital          Category = "CAPITAL"
	CategoryDirectIncome     Category = "DIRECT_INCOME"
	CategoryIndirectIncome   Category = "INDIRECT_INCOME"
	CategoryDirectExpense    Category = "DIRECT_EXPENSE"
	CategoryIndirectExpense  Category = "INDIRECT_EXPENSE"
)

// Nature is the accounting class a category belongs to.
type Nature int

const (
	NatureAsset Nature = iota + 1
	NatureLiability
	NatureCapital
	NatureIncome
	NatureExpense
)

// Categories lists every known category.
var Categories = []Category{
	CategoryCurrentAsset,
	CategoryFixedAsset,
	CategoryInvestment,
	CategoryCurrentLiability,
	CategoryLoan,
	CategoryCapital,
	CategoryDirectIncome,
	CategoryIndirectIncome,
	CategoryDirectExpense,
	CategoryIndirectExpense,
}

// Nature maps the category onto its accounting class. Unknown categories
// return an error so new categories cannot silently fall through.
func (c Category) Nature() (Nature, error) {
	switch c {
	case CategoryCurrentAsset, CategoryFixedAsset, CategoryInvestment:
		return NatureAsset, nil
	case CategoryCurrentLiability, CategoryLoan:
		return NatureLiability, nil
	case CategoryCapital:
		return NatureCapital, nil
	case CategoryDirectIncome, CategoryIndirectIncome:
		return NatureIncome, nil
	case CategoryDirectExpense, CategoryIndirectExpense:
		return NatureExpense, nil
	}

	return 0, fmt.Errorf("unknown ledger category %q", c)
}

func (c Category) Valid() bool {
	_, err := c.Nature()
	return err == nil
}

// Nominal reports whether the category is closed at period end (income or expense).
func (c Category) Nominal() bool {
	n, err := c.Nature()
	if err != nil {
		return false
	}

	return n == NatureIncome || n == NatureExpense
}

// NominalCategories returns the income and expense categories.
func NominalCategories() []Category {
	var cats []Category

	for _, c := range Categories {
		if c.Nominal() {
			cats = append(cats, c)
		}
	}

	return cats
}

// Group is a node of the chart of accounts that ledgers hang off.
type Group struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	Category  Category
	ParentID  *uuid.UUID
	CreatedAt time.Time
}

// Ledger is an account. Voucher entries refer to it by name, not by id.
type Ledger struct {
	ID                 uuid.UUID
	TenantID           uuid.UUID
	Name               string
	Code               string
	GroupID            *uuid.UUID
	Category           Category
	OpeningBalance     decimal.Decimal
	OpeningBalanceType Side
	// OpeningDate is the first day whose postings fold onto OpeningBalance.
	// Nil means the opening balance precedes every posting.
	OpeningDate *time.Time
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// SignedOpening returns the opening balance, positive when it is a debit balance.
func (l *Ledger) SignedOpening() decimal.Decimal {
	return l.OpeningBalanceType.Signed(l.OpeningBalance)
}

// Balance is an unsigned amount and the side it sits on.
type Balance struct {
	Amount decimal.Decimal
	Type   Side
}

// BalanceOf converts a signed running balance (debit positive) into a Balance.
func BalanceOf(signed decimal.Decimal) Balance {
	signed = money.Round(signed)
	if signed.IsNegative() {
		return Balance{Amount: signed.Neg(), Type: Credit}
	}

	return Balance{Amount: signed, Type: Debit}
}

// OpeningBalance is the carried-forward state written onto a ledger.
type OpeningBalance struct {
	LedgerID    uuid.UUID
	LedgerName  string
	Amount      decimal.Decimal
	Type        Side
	OpeningDate time.Time
}
