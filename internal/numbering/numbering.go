package numbering

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Category is the class of transaction a voucher type records.
type Category string

const (
	CategoryPayment    Category = "PAYMENT"
	CategoryReceipt    Category = "RECEIPT"
	CategoryContra     Category = "CONTRA"
	CategoryJournal    Category = "JOURNAL"
	CategorySales      Category = "SALES"
	CategoryPurchase   Category = "PURCHASE"
	CategoryDebitNote  Category = "DEBIT_NOTE"
	CategoryCreditNote Category = "CREDIT_NOTE"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryPayment, CategoryReceipt, CategoryContra, CategoryJournal,
		CategorySales, CategoryPurchase, CategoryDebitNote, CategoryCreditNote:
		return true
	}

	return false
}

// Method decides whether numbers are issued by the counter or typed by the user.
type Method string

const (
	MethodAutomatic Method = "AUTOMATIC"
	MethodManual    Method = "MANUAL"
)

func (m Method) Valid() bool {
	return m == MethodAutomatic || m == MethodManual
}

// Behavior describes how gaps in the sequence are treated.
type Behavior string

const (
	// BehaviorRenumber tolerates gaps left by rolled back transactions.
	BehaviorRenumber Behavior = "RENUMBER"
	// BehaviorRetain keeps issued numbers as they are.
	BehaviorRetain Behavior = "RETAIN"
)

func (b Behavior) Valid() bool {
	return b == BehaviorRenumber || b == BehaviorRetain
}

// VoucherType is a named class of transaction owning its own number counter.
type VoucherType struct {
	ID                  uuid.UUID
	TenantID            uuid.UUID
	Name                string
	Category            Category
	Method              Method
	Behavior            Behavior
	Prefix              string
	Suffix              string
	NextNumber          int64
	AllowManualOverride bool
	AllowDuplicates     bool
	IsActive            bool
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// Series is an independent number range under a voucher type.
type Series struct {
	ID            uuid.UUID
	TenantID      uuid.UUID
	VoucherTypeID uuid.UUID
	Name          string
	Prefix        string
	Suffix        string
	StartNumber   int64
	NextNumber    int64
	IsDefault     bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Format composes a voucher number.
func Format(prefix string, n int64, suffix string) string {
	return prefix + strconv.FormatInt(n, 10) + suffix
}
