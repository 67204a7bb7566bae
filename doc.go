// Package knobs provides the storage facade used to persist firmware
// configuration knobs on a pluggable key-value backend.
//
// A [Storage] hands out transactions and
// prefix ranges, and the [github.com/tarantool/go-knobs/variable] package
// builds persisted (Name, GUID) variables on top of it. Profile reconciliation
// lives in [github.com/tarantool/go-knobs/reconcile] and the XML settings
// import/export in [github.com/tarantool/go-knobs/settings].
package knobs
