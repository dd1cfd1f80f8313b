package list_products

import (
	"errors"
	"math/big"
	"strconv"
	"strings"

	contracts "github.com/stockroom/inventory-service/internal/app/product/contracts"
)

// MaxPageSize is the upper bound the query object enforces on page size.
const MaxPageSize = 100

// Validation errors for the list request.
var (
	ErrInvalidPage        = errors.New("page must be >= 1")
	ErrInvalidPageSize    = errors.New("page size must be between 1 and 100")
	ErrInvalidPriceFilter = errors.New("price filters must be non-negative decimals")
	ErrInvalidPriceRange  = errors.New("min price cannot exceed max price")
)

// Request carries the filter/sort/pagination parameters of a product list
// query. Optional filters are nil when absent; prices are decimal strings.
type Request struct {
	Page          int
	PageSize      int
	SearchTerm    *string
	CategoryID    *string
	MinPrice      *string
	MaxPrice      *string
	LowStockOnly  bool
	SortBy        string
	SortDirection string
}

// Normalized returns a copy with the sort key and direction folded to their
// canonical forms: sort keys are matched case-insensitively against the
// supported set (anything else falls back to name), and any direction other
// than "desc" means ascending.
func (r Request) Normalized() Request {
	switch strings.ToLower(strings.TrimSpace(r.SortBy)) {
	case contracts.SortByPrice:
		r.SortBy = contracts.SortByPrice
	case contracts.SortByStock, "stockquantity", "stock":
		r.SortBy = contracts.SortByStock
	case contracts.SortByCreatedAt, "createdat":
		r.SortBy = contracts.SortByCreatedAt
	default:
		r.SortBy = contracts.SortByName
	}

	if strings.EqualFold(strings.TrimSpace(r.SortDirection), "desc") {
		r.SortDirection = "desc"
	} else {
		r.SortDirection = "asc"
	}

	return r
}

// Validate checks the pagination and price bounds. It expects a normalized
// request and does not mutate it.
func (r Request) Validate() error {
	if r.Page < 1 {
		return ErrInvalidPage
	}
	if r.PageSize < 1 || r.PageSize > MaxPageSize {
		return ErrInvalidPageSize
	}

	minRat, err := parsePriceBound(r.MinPrice)
	if err != nil {
		return err
	}
	maxRat, err := parsePriceBound(r.MaxPrice)
	if err != nil {
		return err
	}
	if minRat != nil && maxRat != nil && minRat.Cmp(maxRat) > 0 {
		return ErrInvalidPriceRange
	}

	return nil
}

// Fingerprint derives the deterministic cache key for this request. Every
// field participates, in a fixed order, with a literal "null" for absent
// optionals, so structurally equal requests share a key and any field
// difference changes it. Delimiters inside user-supplied values are escaped
// so a value cannot fake a segment boundary. Callers must normalize first.
func (r Request) Fingerprint() string {
	parts := []string{
		"products:list", "v1",
		strconv.Itoa(r.Page),
		strconv.Itoa(r.PageSize),
		escapeSegment(strOrNull(r.SearchTerm)),
		escapeSegment(strOrNull(r.CategoryID)),
		escapeSegment(strOrNull(r.MinPrice)),
		escapeSegment(strOrNull(r.MaxPrice)),
		strconv.FormatBool(r.LowStockOnly),
		r.SortBy,
		r.SortDirection,
	}
	return strings.Join(parts, "|")
}

func escapeSegment(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, "|", `\|`)
}

// toFilter converts the validated request into the read-model filter.
func (r Request) toFilter() (contracts.ProductFilter, error) {
	minRat, err := parsePriceBound(r.MinPrice)
	if err != nil {
		return contracts.ProductFilter{}, err
	}
	maxRat, err := parsePriceBound(r.MaxPrice)
	if err != nil {
		return contracts.ProductFilter{}, err
	}

	var search *string
	if r.SearchTerm != nil && strings.TrimSpace(*r.SearchTerm) != "" {
		s := strings.TrimSpace(*r.SearchTerm)
		search = &s
	}

	return contracts.ProductFilter{
		SearchTerm:   search,
		CategoryID:   r.CategoryID,
		MinPrice:     minRat,
		MaxPrice:     maxRat,
		LowStockOnly: r.LowStockOnly,
		SortBy:       r.SortBy,
		SortDesc:     r.SortDirection == "desc",
		Limit:        r.PageSize,
		Offset:       (r.Page - 1) * r.PageSize,
	}, nil
}

func parsePriceBound(s *string) (*big.Rat, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	rat := new(big.Rat)
	if _, ok := rat.SetString(strings.TrimSpace(*s)); !ok {
		return nil, ErrInvalidPriceFilter
	}
	if rat.Sign() < 0 {
		return nil, ErrInvalidPriceFilter
	}
	return rat, nil
}

func strOrNull(s *string) string {
	if s == nil {
		return "null"
	}
	return *s
}
