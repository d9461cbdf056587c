package orbitals

import (
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// configSchema constrains everything except l and m, which are clamped
// against n after loading.
const configSchema = `
#Config: {
	n:         int
	l:         int
	m:         int
	scale:     number
	threshold: number & >=0
	guesses:   int & >=0
	seed:      int
	workers:   int & >=0
	viewSize:  number & >0
	bins:      int & >=0
	rawOut:    string
	pngOut:    "" | =~"(?i)\\.png$"
	gifOut:    "" | =~"(?i)\\.gif$"
	image: {
		width:     int & >0
		height:    int & >0
		pointSize: int & >0 & <=64
		frames:    int & >0
		delay:     int & >0
		fog:       bool
	}
}
`

var (
	schemaMu   sync.Mutex // cue values are not safe for concurrent use
	schemaOnce sync.Once
	schemaCtx  *cue.Context
	schemaDef  cue.Value
)

func configDef() (*cue.Context, cue.Value) {
	schemaOnce.Do(func() {
		schemaCtx = cuecontext.New()
		schemaDef = schemaCtx.CompileString(configSchema).LookupPath(cue.ParsePath("#Config"))
	})
	return schemaCtx, schemaDef
}

// Validate checks c against the config schema.
func (c Config) Validate() error {
	schemaMu.Lock()
	defer schemaMu.Unlock()
	ctx, def := configDef()
	if err := def.Err(); err != nil {
		return fmt.Errorf("config schema: %w", err)
	}
	v := def.Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, cueerrors.Details(err, nil))
	}
	return nil
}
