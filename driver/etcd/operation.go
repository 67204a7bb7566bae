package etcd

import (
	"fmt"

	etcd "go.etcd.io/etcd/client/v3"

	"github.com/tarantool/go-knobs/operation"
)

// operationsToEtcdOps converts operations to etcd operations.
func operationsToEtcdOps(ops []operation.Operation) ([]etcd.Op, error) {
	etcdOps := make([]etcd.Op, 0, len(ops))
	for _, op := range ops {
		etcdOp, err := operationToEtcdOp(op)
		if err != nil {
			return nil, err
		}

		etcdOps = append(etcdOps, etcdOp)
	}

	return etcdOps, nil
}

// operationToEtcdOp converts an operation to an etcd operation.
// Keys ending with "/" address the whole prefix; deletes always return
// the previous values so callers can tell a miss from a hit.
func operationToEtcdOp(storageOperation operation.Operation) (etcd.Op, error) {
	key := string(storageOperation.Key())

	var opts []etcd.OpOption
	if storageOperation.IsPrefix() {
		opts = append(opts, etcd.WithPrefix())
	}

	switch storageOperation.Type() {
	case operation.TypeGet:
		opts = append(opts, etcd.WithSort(etcd.SortByKey, etcd.SortAscend))
		return etcd.OpGet(key, opts...), nil
	case operation.TypePut:
		return etcd.OpPut(key, string(storageOperation.Value())), nil
	case operation.TypeDelete:
		opts = append(opts, etcd.WithPrevKV())
		return etcd.OpDelete(key, opts...), nil
	default:
		return etcd.Op{}, fmt.Errorf("%w: %v", errUnsupportedOperationType, storageOperation.Type())
	}
}
