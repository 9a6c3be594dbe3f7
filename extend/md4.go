package extend

import (
	"encoding/binary"
	"errors"
	"hash"
	"reflect"
	"unsafe"

	"golang.org/x/crypto/md4"

	"github.com/pc165/dp/mdpad"
)

// PrefixedMD4 returns a new MD4 hash using an existing checksum and buffer length.
func PrefixedMD4(sum []byte, n int) (hash.Hash, error) {
	if len(sum) != md4.Size {
		return nil, errors.New("PrefixedMD4: invalid checksum")
	}
	h := md4.New()

	var state [4]uint32
	for i := range state {
		state[i] = binary.LittleEndian.Uint32(sum[:4])
		sum = sum[4:]
	}
	pad := mdpad.BitPadding(n, md4.BlockSize, binary.LittleEndian)
	written := uint64(n + len(pad))

	setField(reflect.ValueOf(h).Elem().FieldByName("s"), reflect.ValueOf(state))
	setField(reflect.ValueOf(h).Elem().FieldByName("len"), reflect.ValueOf(written))

	return h, nil
}

// setField sets a possibly unexported struct field. Don't do this unless necessary.
func setField(v1, v2 reflect.Value) {
	reflect.NewAt(v1.Type(), unsafe.Pointer(v1.UnsafeAddr())).Elem().Set(v2)
}

// ForgeMD4 is Forge for the MD4 prefix MAC. MD4 pads exactly like MD5, so
// the forged message has the same shape.
func ForgeMD4(sum []byte, keyLen int, known, appended []byte) ([]byte, []byte, error) {
	h, err := PrefixedMD4(sum, keyLen+len(known))
	if err != nil {
		return nil, nil, err
	}
	h.Write(appended)

	return h.Sum([]byte{}), glue(known, GluePadding(keyLen, len(known)), appended), nil
}
