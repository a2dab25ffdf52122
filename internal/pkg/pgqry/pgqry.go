// Package pgqry composes the catalog's filter predicates onto bun select queries.
package pgqry

import (
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	"eag.dev/backend/internal/constant"
	"eag.dev/backend/internal/model/types"
	"eag.dev/backend/internal/pkg/cursor"
)

const (
	ColumnStatus    = "a.status"
	ColumnAgeGroup  = "a.age_group"
	ColumnCategory  = "a.category"
	ColumnGroupSize = "a.group_size"
	ColumnMaterials = "a.materials"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type pq struct {
	Q *bun.SelectQuery
}

func New(bunQuery *bun.SelectQuery) *pq {
	return &pq{Q: bunQuery}
}

func (pq *pq) DoFilterStatus(status string) *pq {
	if status == "" {
		return pq
	}
	pq.Q = pq.Q.Where(ColumnStatus+" = ?", status)
	return pq
}

// DoFilterOverlap keeps rows whose onColumn array shares at least one tag with tags.
// With universal set, rows tagged "any" match any non-empty selection as well.
func (pq *pq) DoFilterOverlap(onColumn string, tags []string, universal bool) *pq {
	if len(tags) == 0 {
		return pq
	}
	values := append(make([]string, 0, len(tags)+1), tags...)
	if universal {
		values = append(values, constant.UniversalTag)
	}
	pq.Q = pq.Q.Where(onColumn+" && ?", pgdialect.Array(values))
	return pq
}

func (pq *pq) DoFilterMaterials(materials string) *pq {
	if materials == "" || materials == constant.UniversalTag {
		return pq
	}
	pq.Q = pq.Q.Where(ColumnMaterials+" = ?", materials)
	return pq
}

// DoFilterTerm matches term case-insensitively as a substring of the title or the description,
// or exactly against one of the lower-cased keyword tags.
func (pq *pq) DoFilterTerm(term string) *pq {
	term = strings.TrimSpace(term)
	if term == "" {
		return pq
	}
	like := "%" + likeEscaper.Replace(term) + "%"
	tag := pgdialect.Array([]string{strings.ToLower(term)})
	pq.Q = pq.Q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("a.title ILIKE ?", like).
			WhereOr("a.description ILIKE ?", like).
			WhereOr("a.tags @> ?", tag)
	})
	return pq
}

// DoFilterTextOnly is DoFilterTerm without the tag match, as used by the moderation search box.
func (pq *pq) DoFilterTextOnly(term string) *pq {
	term = strings.TrimSpace(term)
	if term == "" {
		return pq
	}
	like := "%" + likeEscaper.Replace(term) + "%"
	pq.Q = pq.Q.WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.
			Where("a.title ILIKE ?", like).
			WhereOr("a.description ILIKE ?", like)
	})
	return pq
}

// DoKeysetAfter continues a newest-first listing after c.
func (pq *pq) DoKeysetAfter(c *cursor.Cursor) *pq {
	if c == nil {
		return pq
	}
	pq.Q = pq.Q.Where("(a.created_at, a.activity_id) < (?, ?)", c.CreatedAt, c.ID)
	return pq
}

func (pq *pq) NewestFirst() *pq {
	pq.Q = pq.Q.OrderExpr("a.created_at DESC, a.activity_id DESC")
	return pq
}

// Catalog applies the public catalog contract: approved rows only, then every facet and the term.
// Categories carry no universal tag, so every returned row's categories intersect the selection.
func Catalog(q *bun.SelectQuery, query *types.CatalogQuery) *bun.SelectQuery {
	return New(q).
		DoFilterStatus(constant.StatusApproved).
		DoFilterOverlap(ColumnAgeGroup, query.Ages, true).
		DoFilterOverlap(ColumnCategory, query.Categories, false).
		DoFilterOverlap(ColumnGroupSize, query.GroupSizes, true).
		DoFilterMaterials(query.Materials).
		DoFilterTerm(query.Term).
		Q
}
