package mvcc

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/tarantool/go-mvcc/backup"
	"github.com/tarantool/go-mvcc/hasher"
	"github.com/tarantool/go-mvcc/index"
)

// Save writes a backup of the retained history to w. Writers are blocked
// while the image is taken; reads and compaction are not.
func (s *Store) Save(w io.Writer) error {
	s.writeMu.Lock()

	img := backup.Image{
		Format:   backup.FormatVersion,
		Revision: s.clock.Current(),
		Floor:    s.snapshots.Floor(),
		Keys:     make([]backup.Key, 0, s.index.Len()),
	}

	// History below the logical floor that is not pruned yet is saved as is.
	s.index.Export(func(key []byte, history []index.Record) bool {
		img.Keys = append(img.Keys, backup.Key{Key: key, History: history})
		return true
	})

	s.writeMu.Unlock()

	var opts []backup.Option
	if s.signer != nil {
		opts = append(opts, backup.WithSigner(s.signer))
	}

	err := backup.Write(w, img, hasher.NewSHA256Hasher(), opts...)
	if err != nil {
		return fmt.Errorf("failed to save store: %w", err)
	}

	s.logger.Info("store saved",
		zap.Int64("revision", img.Revision),
		zap.Int64("floor", img.Floor),
		zap.Int("keys", len(img.Keys)))

	return nil
}

// Restore creates a store from a backup written by [Store.Save]. With
// [WithBackupSigner] the backup must carry a valid signature. History
// left below the floor is pruned once [Store.Run] is started.
func Restore(r io.Reader, opts ...Option) (*Store, error) {
	s := New(opts...)

	var readOpts []backup.Option
	if s.signer != nil {
		readOpts = append(readOpts, backup.WithVerifier(s.signer))
	}

	img, err := backup.Read(r, readOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to restore store: %w", err)
	}

	for _, key := range img.Keys {
		if len(key.History) > 0 {
			if last := key.History[len(key.History)-1]; last.Mod.Main > img.Revision {
				return nil, fmt.Errorf("failed to restore store: %w",
					index.ImportError{Key: key.Key, Problem: "record is newer than the backup revision"})
			}
		}

		err = s.index.Import(key.Key, key.History)
		if err != nil {
			return nil, fmt.Errorf("failed to restore store: %w", err)
		}
	}

	s.clock.Restore(img.Revision)
	s.snapshots.Advance(img.Floor)
	s.index.RaiseFloor(img.Floor)
	s.compactor.Schedule(img.Floor)

	s.metrics.Floor(img.Floor)
	s.metrics.Revision(img.Revision)
	s.logger.Info("store restored",
		zap.Int64("revision", img.Revision),
		zap.Int64("floor", img.Floor),
		zap.Int("keys", len(img.Keys)))

	return s, nil
}
