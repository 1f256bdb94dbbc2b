package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/interop/util"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// StringsEqual compares two strings by content. Both values are converted
// to byte strings first, so slices and concatenations compare correctly.
func StringsEqual(a, b string) bool {
	return util.Equals(string([]byte(a)), string([]byte(b)))
}
