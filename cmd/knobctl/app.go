package main

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tarantool/go-tarantool/v2"
	etcd "go.etcd.io/etcd/client/v3"

	knobs "github.com/tarantool/go-knobs"
	"github.com/tarantool/go-knobs/crypto"
	"github.com/tarantool/go-knobs/driver"
	"github.com/tarantool/go-knobs/driver/dummy"
	etcddriver "github.com/tarantool/go-knobs/driver/etcd"
	"github.com/tarantool/go-knobs/driver/tkv"
	"github.com/tarantool/go-knobs/guid"
	"github.com/tarantool/go-knobs/internal/config"
	"github.com/tarantool/go-knobs/namer"
	"github.com/tarantool/go-knobs/variable"
	"github.com/tarantool/go-knobs/volume"
)

// app is shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string

	cfg     config.Config
	logger  *logrus.Logger
	storage knobs.Storage
	closers []func() error
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return oops.In("knobctl").Wrapf(err, "failed to load config")
	}

	level := cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return oops.In("knobctl").With("level", level).Wrapf(err, "invalid log level")
	}

	a.cfg = cfg
	a.logger = logrus.New()
	a.logger.SetOutput(cmd.ErrOrStderr())
	a.logger.SetLevel(lvl)

	return nil
}

func (a *app) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.WithFields(logrus.Fields{"at": "knobctl.close"}).WithError(err).Warn("failed_to_close_backend")
		}
	}

	a.closers = nil
}

func (a *app) openDriver(ctx context.Context) (driver.Driver, error) {
	switch a.cfg.Backend {
	case config.BackendEtcd:
		client, err := etcd.New(etcd.Config{ //nolint:exhaustruct
			Endpoints:   a.cfg.Etcd.Endpoints,
			DialTimeout: a.cfg.Etcd.DialTimeout,
			Context:     ctx,
		})
		if err != nil {
			return nil, oops.In("knobctl").With("endpoints", a.cfg.Etcd.Endpoints).Wrapf(err, "failed to connect to etcd")
		}

		a.closers = append(a.closers, client.Close)

		return etcddriver.New(client), nil
	case config.BackendTarantool:
		dialer := &tarantool.NetDialer{ //nolint:exhaustruct
			Address:  a.cfg.Tarantool.Address,
			User:     a.cfg.Tarantool.User,
			Password: a.cfg.Tarantool.Password,
		}

		dialCtx, cancel := context.WithTimeout(ctx, a.cfg.Tarantool.Timeout)
		defer cancel()

		conn, err := tarantool.Connect(dialCtx, dialer, tarantool.Opts{Timeout: a.cfg.Tarantool.Timeout}) //nolint:exhaustruct
		if err != nil {
			return nil, oops.In("knobctl").With("address", a.cfg.Tarantool.Address).Wrapf(err, "failed to connect to tarantool")
		}

		a.closers = append(a.closers, conn.Close)

		return tkv.New(conn, tkv.WithTxnFunction(a.cfg.Tarantool.TxnFunction)), nil
	default:
		return dummy.New(), nil
	}
}

func (a *app) openStorage(ctx context.Context) (knobs.Storage, error) {
	if a.storage != nil {
		return a.storage, nil
	}

	drv, err := a.openDriver(ctx)
	if err != nil {
		return nil, err
	}

	a.storage = knobs.NewStorage(drv)

	return a.storage, nil
}

func (a *app) variables(ctx context.Context) (variable.Store, error) {
	storage, err := a.openStorage(ctx)
	if err != nil {
		return nil, err
	}

	return variable.NewKVStore(storage, variable.WithNamer(namer.NewDefaultNamer(a.cfg.Prefix))), nil
}

func (a *app) signedVolume(ctx context.Context, opts ...volume.SignedOption) (*volume.Signed, error) {
	if a.cfg.Volume.PublicKey == "" {
		return nil, oops.In("knobctl").Errorf("volume.public_key is not configured")
	}

	pub, err := crypto.LoadPublicKey(a.cfg.Volume.PublicKey)
	if err != nil {
		return nil, oops.In("knobctl").Wrapf(err, "failed to load public key")
	}

	storage, err := a.openStorage(ctx)
	if err != nil {
		return nil, err
	}

	opts = append([]volume.SignedOption{
		volume.WithSectionNamer(namer.NewDefaultNamer(a.cfg.Volume.Prefix)),
	}, opts...)

	return volume.NewSigned(storage, crypto.NewRSAPSSVerifier(pub), opts...), nil
}

// profileVolumes is every configured profile source, directory first.
type profileVolumes struct {
	sources []volume.Source
	listers []volume.Lister
}

func (v profileVolumes) Section(ctx context.Context, g guid.GUID) ([]byte, error) {
	return volume.Chain(v.sources).Section(ctx, g) //nolint:wrapcheck
}

func (a *app) volumes(ctx context.Context) (profileVolumes, error) {
	var out profileVolumes

	if a.cfg.Volume.Dir != "" {
		dir := volume.NewDir(a.cfg.Volume.Dir)
		out.sources = append(out.sources, dir)
		out.listers = append(out.listers, dir)
	}

	if a.cfg.Volume.PublicKey != "" {
		signed, err := a.signedVolume(ctx)
		if err != nil {
			return profileVolumes{}, err
		}

		out.sources = append(out.sources, signed)
		out.listers = append(out.listers, signed)
	}

	if len(out.sources) == 0 {
		return profileVolumes{}, oops.In("knobctl").Errorf("no profile volume configured, set volume.dir or volume.public_key")
	}

	return out, nil
}

func withTimeout(cmd *cobra.Command, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(cmd.Context())
	}

	return context.WithTimeout(cmd.Context(), timeout)
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
