package lifecycle

import (
	"fmt"
	"strconv"
	"strings"

	vo "github.com/expohub/expohub/internal/domain/lifecycle/valueobjects"
)

// EntityRef points at one moderated entity. The zero value refers to nothing.
type EntityRef struct {
	kind vo.Kind
	id   uint
}

func ExhibitionRef(id uint) EntityRef {
	return EntityRef{kind: vo.KindExhibition, id: id}
}

func CompanyRef(id uint) EntityRef {
	return EntityRef{kind: vo.KindCompany, id: id}
}

// NewEntityRef validates a kind/id pair coming from storage or a request.
func NewEntityRef(kind string, id uint) (EntityRef, error) {
	k, err := vo.NewKind(kind)
	if err != nil {
		return EntityRef{}, err
	}
	if id == 0 {
		return EntityRef{}, fmt.Errorf("%s id is required", k)
	}
	return EntityRef{kind: k, id: id}, nil
}

// ParseEntityRef parses the "kind:id" form produced by String.
func ParseEntityRef(s string) (EntityRef, error) {
	kind, rawID, ok := strings.Cut(s, ":")
	if !ok {
		return EntityRef{}, fmt.Errorf("malformed entity reference: %q", s)
	}
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil {
		return EntityRef{}, fmt.Errorf("malformed entity reference: %q", s)
	}
	return NewEntityRef(kind, uint(id))
}

func (r EntityRef) Kind() vo.Kind { return r.kind }
func (r EntityRef) ID() uint      { return r.id }
func (r EntityRef) IsZero() bool  { return r.id == 0 }

func (r EntityRef) String() string {
	return fmt.Sprintf("%s:%d", r.kind, r.id)
}

// Lookup resolves the table entry registered for ref's kind.
func Lookup[T any](table map[vo.Kind]T, ref EntityRef) (T, error) {
	entry, ok := table[ref.kind]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %q", ErrUnknownKind, ref.kind)
	}
	return entry, nil
}
