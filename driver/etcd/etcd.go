// Package etcd provides an etcd implementation of the storage driver interface.
// Persisted variables and firmware-volume sections can live in an etcd cluster.
package etcd

import (
	"context"
	"errors"
	"fmt"

	etcd "go.etcd.io/etcd/client/v3"

	"github.com/tarantool/go-knobs/driver"
	"github.com/tarantool/go-knobs/kv"
	"github.com/tarantool/go-knobs/operation"
	"github.com/tarantool/go-knobs/predicate"
	"github.com/tarantool/go-knobs/tx"
)

// Client defines the minimal interface needed for etcd operations.
// *etcd.Client satisfies it.
type Client interface {
	// Txn creates a new transaction.
	Txn(ctx context.Context) etcd.Txn
}

// Driver is an etcd implementation of the storage driver interface.
type Driver struct {
	client Client
}

var (
	_ driver.Driver = &Driver{} //nolint:exhaustruct

	errUnsupportedPredicateTarget  = errors.New("unsupported predicate target")
	errValuePredicateRequiresBytes = errors.New("value predicate requires []byte value")
	errUnsupportedValueOperation   = errors.New("unsupported operation for value predicate")
	errVersionPredicateRequiresInt = errors.New("version predicate requires int64 value")
	errUnsupportedVersionOperation = errors.New("unsupported operation for version predicate")
	errUnsupportedOperationType    = errors.New("unsupported operation type")
)

// New creates a new etcd driver instance using an existing client.
// The client should be properly configured and connected to an etcd cluster.
func New(client Client) *Driver {
	return &Driver{client: client}
}

// Execute executes a transactional operation with conditional logic.
func (d Driver) Execute(
	ctx context.Context,
	predicates []predicate.Predicate,
	thenOps []operation.Operation,
	elseOps []operation.Operation,
) (tx.Response, error) {
	cmps, err := predicatesToCmps(predicates)
	if err != nil {
		return tx.Response{}, fmt.Errorf("failed to convert predicates: %w", err)
	}

	thenEtcdOps, err := operationsToEtcdOps(thenOps)
	if err != nil {
		return tx.Response{}, fmt.Errorf("failed to convert then operations: %w", err)
	}

	elseEtcdOps, err := operationsToEtcdOps(elseOps)
	if err != nil {
		return tx.Response{}, fmt.Errorf("failed to convert else operations: %w", err)
	}

	resp, err := d.client.Txn(ctx).If(cmps...).Then(thenEtcdOps...).Else(elseEtcdOps...).Commit()
	if err != nil {
		return tx.Response{}, fmt.Errorf("transaction failed: %w", err)
	}

	return etcdResponseToTxResponse(resp), nil
}

// etcdResponseToTxResponse converts an etcd transaction response to tx.Response.
func etcdResponseToTxResponse(resp *etcd.TxnResponse) tx.Response {
	results := make([]tx.RequestResponse, 0, len(resp.Responses))

	for _, etcdResp := range resp.Responses {
		var values []kv.KeyValue

		switch {
		case etcdResp.GetResponseRange() != nil:
			for _, etcdKv := range etcdResp.GetResponseRange().Kvs {
				values = append(values, kv.KeyValue{
					Key:         etcdKv.Key,
					Value:       etcdKv.Value,
					ModRevision: etcdKv.ModRevision,
				})
			}
		case etcdResp.GetResponsePut() != nil:
			// Put operations don't return data.
		case etcdResp.GetResponseDeleteRange() != nil:
			for _, etcdKv := range etcdResp.GetResponseDeleteRange().PrevKvs {
				values = append(values, kv.KeyValue{
					Key:         etcdKv.Key,
					Value:       etcdKv.Value,
					ModRevision: etcdKv.ModRevision,
				})
			}
		}

		results = append(results, tx.RequestResponse{Values: values})
	}

	return tx.Response{
		Succeeded: resp.Succeeded,
		Results:   results,
	}
}
