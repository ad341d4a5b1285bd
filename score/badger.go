package score

import (
	"strconv"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
)

// BadgerStore keeps best scores in a badger database, under "best:<namespace>"
type BadgerStore struct {
	db *badger.DB
}

// OpenBadgerStore opens (or creates) the database in dir
func OpenBadgerStore(dir string) (*BadgerStore, error) {
	return openBadgerStore(badger.DefaultOptions(dir))
}

// OpenInMemoryBadgerStore opens a database that lives only as long as the store
func OpenInMemoryBadgerStore() (*BadgerStore, error) {
	return openBadgerStore(badger.DefaultOptions("").WithInMemory(true))
}

func openBadgerStore(opts badger.Options) (*BadgerStore, error) {
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open score database")
	}
	return &BadgerStore{db: db}, nil
}

func bestKey(namespace string) []byte {
	return []byte("best:" + namespace)
}

func readBest(txn *badger.Txn, namespace string) (int, error) {
	item, err := txn.Get(bestKey(namespace))
	if err == badger.ErrKeyNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var best int
	err = item.Value(func(val []byte) error {
		best, err = strconv.Atoi(string(val))
		return err
	})
	return best, err
}

func (store *BadgerStore) Best(namespace string) (int, error) {
	var best int
	err := store.db.View(func(txn *badger.Txn) error {
		var err error
		best, err = readBest(txn, namespace)
		return err
	})
	if err != nil {
		return 0, errors.Wrapf(err, "cannot read best score for %q", namespace)
	}
	return best, nil
}

func (store *BadgerStore) Record(namespace string, score int) (bool, error) {
	recorded := false
	err := store.db.Update(func(txn *badger.Txn) error {
		best, err := readBest(txn, namespace)
		if err != nil {
			return err
		}
		if score <= best {
			return nil
		}

		recorded = true
		return txn.Set(bestKey(namespace), []byte(strconv.Itoa(score)))
	})
	if err != nil {
		return false, errors.Wrapf(err, "cannot record score for %q", namespace)
	}
	return recorded, nil
}

func (store *BadgerStore) Close() error {
	return store.db.Close()
}
