package backup

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-mvcc/index"
	"github.com/tarantool/go-mvcc/revision"
)

const (
	keyArrayLen    = 2
	recordArrayLen = 7
)

// Key is the retained history of one key.
type Key struct {
	Key     []byte
	History []index.Record
}

var (
	_ msgpack.CustomEncoder = Key{}  //nolint:exhaustruct
	_ msgpack.CustomDecoder = &Key{} //nolint:exhaustruct
)

// EncodeMsgpack writes the key as [key, [record...]], every record being
// [value, create.main, create.sub, mod.main, mod.sub, version, tombstone].
func (k Key) EncodeMsgpack(encoder *msgpack.Encoder) error {
	err := encoder.EncodeArrayLen(keyArrayLen)
	if err != nil {
		return errEncoding("encode key array length", err)
	}

	err = encoder.EncodeBytes(k.Key)
	if err != nil {
		return errEncoding("encode key", err)
	}

	err = encoder.EncodeArrayLen(len(k.History))
	if err != nil {
		return errEncoding("encode history length", err)
	}

	for _, rec := range k.History {
		err = encodeRecord(encoder, rec)
		if err != nil {
			return err
		}
	}

	return nil
}

func encodeRecord(encoder *msgpack.Encoder, rec index.Record) error {
	err := encoder.EncodeArrayLen(recordArrayLen)
	if err != nil {
		return errEncoding("encode record array length", err)
	}

	if rec.Tombstone {
		err = encoder.EncodeNil()
	} else {
		err = encoder.EncodeBytes(rec.Value)
	}

	if err != nil {
		return errEncoding("encode record value", err)
	}

	for _, n := range []int64{rec.Create.Main, rec.Create.Sub, rec.Mod.Main, rec.Mod.Sub, rec.Version} {
		err = encoder.EncodeInt(n)
		if err != nil {
			return errEncoding("encode record revision", err)
		}
	}

	err = encoder.EncodeBool(rec.Tombstone)
	if err != nil {
		return errEncoding("encode record tombstone", err)
	}

	return nil
}

// DecodeMsgpack reads a key written by [Key.EncodeMsgpack].
func (k *Key) DecodeMsgpack(decoder *msgpack.Decoder) error {
	n, err := decoder.DecodeArrayLen()
	if err != nil {
		return errDecoding("decode key array length", err)
	}

	if n != keyArrayLen {
		return errDecoding("decode key", fmt.Errorf("%w: key array of %d", ErrMalformed, n))
	}

	k.Key, err = decoder.DecodeBytes()
	if err != nil {
		return errDecoding("decode key", err)
	}

	records, err := decoder.DecodeArrayLen()
	if err != nil {
		return errDecoding("decode history length", err)
	}

	k.History = make([]index.Record, 0, max(records, 0))

	for range records {
		rec, err := decodeRecord(decoder)
		if err != nil {
			return err
		}

		k.History = append(k.History, rec)
	}

	return nil
}

func decodeRecord(decoder *msgpack.Decoder) (index.Record, error) {
	n, err := decoder.DecodeArrayLen()
	if err != nil {
		return index.Record{}, errDecoding("decode record array length", err)
	}

	if n != recordArrayLen {
		return index.Record{}, errDecoding("decode record", fmt.Errorf("%w: record array of %d", ErrMalformed, n))
	}

	value, err := decoder.DecodeBytes()
	if err != nil {
		return index.Record{}, errDecoding("decode record value", err)
	}

	var nums [5]int64

	for i := range nums {
		nums[i], err = decoder.DecodeInt64()
		if err != nil {
			return index.Record{}, errDecoding("decode record revision", err)
		}
	}

	tombstone, err := decoder.DecodeBool()
	if err != nil {
		return index.Record{}, errDecoding("decode record tombstone", err)
	}

	return index.Record{
		Value:     value,
		Create:    revision.Revision{Main: nums[0], Sub: nums[1]},
		Mod:       revision.Revision{Main: nums[2], Sub: nums[3]},
		Version:   nums[4],
		Tombstone: tombstone,
	}, nil
}
