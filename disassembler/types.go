package disassembler

import (
	"context"

	"github.com/katalvlaran/burrsolve/burrlog"
	"github.com/katalvlaran/burrsolve/cache"
	"github.com/katalvlaran/burrsolve/grouping"
)

// Option configures a Disassemble call via functional arguments.
type Option func(*options)

type options struct {
	ctx    context.Context
	logger burrlog.Logger
}

func defaultOptions() options {
	return options{ctx: context.Background(), logger: burrlog.NullLogger{}}
}

// WithContext sets a context checked for cancellation on entry to each
// sub-problem and before each BFS node is expanded: on
// cancel, Disassemble returns the context's error rather than a null
// Separation, so callers can tell "indeterminate" apart from
// "unsolvable".
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithLogger attaches a Logger that receives Debug-level reports of BFS
// layer rotations and recursion entry/exit. The zero value leaves the
// default burrlog.NullLogger{} in place, so Disassemble is usable
// without ever touching burrlog.
func WithLogger(l burrlog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// driver holds the state shared across an entire disassembly, including
// every recursive sub-problem: the movement cache (read-mostly, grows
// monotonically) and the shape-grouping accountant (reset per use via
// NewSet, safe to share since the search is single-threaded).
type driver struct {
	ctx     context.Context
	cache   *cache.Cache
	grouper *grouping.Grouping
	logger  burrlog.Logger
}
