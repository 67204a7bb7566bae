package tkv

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/tarantool/go-knobs/kv"
	"github.com/tarantool/go-knobs/operation"
	"github.com/tarantool/go-knobs/predicate"
	"github.com/tarantool/go-knobs/tx"
)

type txnKeyValue struct {
	Path        []byte `msgpack:"path"`
	ModRevision int64  `msgpack:"mod_revision"`
	Value       []byte `msgpack:"value"`
}

// txnResponseDataSingle is the result of one operation: a bare array of
// key-values, empty for puts.
type txnResponseDataSingle struct {
	Response []txnKeyValue
}

func (t *txnResponseDataSingle) DecodeMsgpack(decoder *msgpack.Decoder) error {
	if err := decoder.Decode(&t.Response); err != nil {
		return fmt.Errorf("failed to decode operation response: %w", err)
	}

	return nil
}

type txnResponseData struct {
	IsSuccess bool                    `msgpack:"is_success"`
	Responses []txnResponseDataSingle `msgpack:"responses"`
}

type txnResponse struct {
	Data     txnResponseData `msgpack:"data"`
	Revision int64           `msgpack:"revision"`
}

func (r txnResponse) asTxnResponse() tx.Response {
	results := make([]tx.RequestResponse, 0, len(r.Data.Responses))
	for _, val := range r.Data.Responses {
		keyValues := make([]kv.KeyValue, 0, len(val.Response))
		for _, resp := range val.Response {
			// Older storages omit per-key revisions; fall back to the txn revision.
			modRevision := resp.ModRevision
			if modRevision == 0 && r.Revision != 0 {
				modRevision = r.Revision
			}

			keyValues = append(keyValues, kv.KeyValue{
				Key:         resp.Path,
				Value:       resp.Value,
				ModRevision: modRevision,
			})
		}

		results = append(results, tx.RequestResponse{
			Values: keyValues,
		})
	}

	return tx.Response{
		Succeeded: r.Data.IsSuccess,
		Results:   results,
	}
}

type txnRequest struct {
	_msgpack struct{} `msgpack:",omitempty"`

	Predicates []tkvPredicate `msgpack:"predicates"`
	OnSuccess  []tkvOperation `msgpack:"on_success"`
	OnFailure  []tkvOperation `msgpack:"on_failure"`
}

func newTxnRequest(
	predicates []predicate.Predicate,
	onSuccess []operation.Operation,
	onFailure []operation.Operation,
) txnRequest {
	return txnRequest{
		_msgpack:   struct{}{},
		Predicates: newTKVPredicates(predicates),
		OnSuccess:  newTKVOperations(onSuccess),
		OnFailure:  newTKVOperations(onFailure),
	}
}
