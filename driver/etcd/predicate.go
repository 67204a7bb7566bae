package etcd

import (
	"fmt"

	etcd "go.etcd.io/etcd/client/v3"

	"github.com/tarantool/go-knobs/predicate"
)

// predicatesToCmps converts a predicate list to an etcd comparison list.
func predicatesToCmps(predicates []predicate.Predicate) ([]etcd.Cmp, error) {
	cmps := make([]etcd.Cmp, 0, len(predicates))
	for _, pred := range predicates {
		cmp, err := predicateToCmp(pred)
		if err != nil {
			return nil, err
		}

		cmps = append(cmps, cmp)
	}

	return cmps, nil
}

func predicateToCmp(pred predicate.Predicate) (etcd.Cmp, error) {
	switch pred.Target() {
	case predicate.TargetValue:
		return valuePredicateToCmp(pred)
	case predicate.TargetVersion:
		return versionPredicateToCmp(pred)
	default:
		return etcd.Cmp{}, fmt.Errorf("%w: %v", errUnsupportedPredicateTarget, pred.Target())
	}
}

func valuePredicateToCmp(pred predicate.Predicate) (etcd.Cmp, error) {
	key := string(pred.Key())

	value, ok := pred.Value().([]byte)
	if !ok {
		return etcd.Cmp{}, errValuePredicateRequiresBytes
	}

	switch pred.Operation() { //nolint:exhaustive
	case predicate.OpEqual:
		return etcd.Compare(etcd.Value(key), "=", string(value)), nil
	case predicate.OpNotEqual:
		return etcd.Compare(etcd.Value(key), "!=", string(value)), nil
	default:
		return etcd.Cmp{}, fmt.Errorf("%w: %v", errUnsupportedValueOperation, pred.Operation())
	}
}

// versionPredicateToCmp maps versions onto etcd's ModRevision, which is 0
// for a key that does not exist.
func versionPredicateToCmp(pred predicate.Predicate) (etcd.Cmp, error) {
	key := string(pred.Key())

	version, ok := pred.Value().(int64)
	if !ok {
		return etcd.Cmp{}, errVersionPredicateRequiresInt
	}

	var result string

	switch pred.Operation() {
	case predicate.OpEqual:
		result = "="
	case predicate.OpNotEqual:
		result = "!="
	case predicate.OpGreater:
		result = ">"
	case predicate.OpLess:
		result = "<"
	default:
		return etcd.Cmp{}, fmt.Errorf("%w: %v", errUnsupportedVersionOperation, pred.Operation())
	}

	return etcd.Compare(etcd.ModRevision(key), result, version), nil
}
