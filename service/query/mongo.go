package query

/*
	Package query provides the table-level interface for querying mongo.
	It is a thin wrap over https://github.com/mongodb/mongo-go-driver,
	see https://godoc.org/go.mongodb.org/mongo-driver/mongo for details
	of each underlying call.
*/

import (
	"fmt"

	"github.com/mintora/goapi/base/ctx"
	"github.com/mintora/goapi/domain"
)

var (
	// ErrNotFound is mongo document not found error
	ErrNotFound = fmt.Errorf("document not found")

	// ErrDuplicateKey is an error when violating unique index
	ErrDuplicateKey = fmt.Errorf("duplicate key")
)

type patchOp struct {
	patchMany bool
}

// PatchOp is an alias for functional argument
type PatchOp func(*patchOp)

// WithPatchMany specifies patchMany setting. To patch all entries selected, set patchMany = true.
func WithPatchMany(patchMany bool) PatchOp {
	return func(o *patchOp) {
		o.patchMany = patchMany
	}
}

// Mongo abstracts the mongo layer.
type Mongo interface {
	// Insert inserts a new document to the table
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	// FindOne gets data from the table
	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Count returns counting for matched entries in the table
	Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error)

	// Upsert updates an entry if the selector already exists,
	// inserts it otherwise
	Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error

	// Search sorts order by `sort` argument (ex "timestamp" ascending, or "-timestamp" descending)
	// if `sort` is "", the sort action is skipped, and MongoDB does not guarantee the order of query results.
	Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error

	// SearchNSorts sorts with multiple fields, if you use a compound key make sure key order is correct.
	// https://docs.mongodb.com/manual/tutorial/sort-results-with-indexes/
	SearchNSorts(context ctx.Ctx, table domain.Table, offset, limit int, sortFields []string, query, results interface{}) error

	// Remove removes an entry from the table.
	// Return ErrNotFound if selector does not match any documents
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// RemoveAll removes all entries matching the selector from the table
	RemoveAll(context ctx.Ctx, table domain.Table, selector interface{}) (removedCnt int64, err error)

	// Patch patches an entry. Return ErrNotFound if selector does not
	// match any documents, which doubles as the compare-and-swap miss
	// signal when the selector carries expected prior state.
	// To patch all entries selected, set WithPatchMany(true).
	Patch(context ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error

	// PatchAll patches every entry matching the selector and reports
	// how many documents were modified
	PatchAll(context ctx.Ctx, table domain.Table, selector, update interface{}) (modifiedCnt int64, err error)

	// RunWithTransaction runs fn inside a mongo session transaction.
	// When the context already carries a session the call joins the
	// ongoing transaction instead of opening a nested one, so
	// settlement units can compose.
	RunWithTransaction(context ctx.Ctx, run func(ctx.Ctx) error) error

	// InTransaction reports whether the context already carries an
	// open session transaction. Side effects that must not precede
	// the commit check this before running.
	InTransaction(context ctx.Ctx) bool
}
