package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key interface{}, value interface{}) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetInt reads an integer value from contract storage. Missing values are
// zero.
func GetInt(ctx storage.Context, key interface{}) int {
	data := storage.Get(ctx, key)
	if data != nil {
		return data.(int)
	}

	return 0
}
