package settings

import (
	"context"
	"encoding/base64"
	"encoding/binary"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/samber/oops"
	"github.com/sirupsen/logrus"

	"github.com/tarantool/go-knobs/internal/options"
	"github.com/tarantool/go-knobs/platform"
	"github.com/tarantool/go-knobs/variable"
	"github.com/tarantool/go-knobs/varlist"
)

const floorSize = 4

// Engine applies and dumps settings packets.
type Engine struct {
	store    variable.Store
	access   Access
	resetter platform.Resetter
	opts     engineOptions
}

// New creates an Engine. A nil access makes every managed Id unknown.
func New(store variable.Store, access Access, resetter platform.Resetter, opts ...Option) *Engine {
	return &Engine{
		store:    store,
		access:   access,
		resetter: resetter,
		opts:     options.ApplyOptions(defaultOptions, opts),
	}
}

func (e *Engine) log(at string) *logrus.Entry {
	return e.opts.logger.WithFields(logrus.Fields{"at": "settings." + at})
}

func (e *Engine) createdOn() string {
	return e.opts.now().UTC().Format(time.RFC3339)
}

func (e *Engine) isFloor(v variable.Variable) bool {
	return v.Name == e.opts.floorName && v.GUID == e.opts.floorGUID
}

// readFloor returns the highest accepted lowest-supported version, 0 if none.
// A floor of the wrong size reads as 0 so the next accepted packet rewrites it.
func (e *Engine) readFloor(ctx context.Context) (uint32, error) {
	v, err := e.store.Get(ctx, e.opts.floorName, e.opts.floorGUID)

	switch {
	case errors.Is(err, variable.ErrNotFound):
		return 0, nil
	case err != nil:
		return 0, err //nolint:wrapcheck
	case len(v.Data) != floorSize:
		e.log("Engine.readFloor").WithFields(logrus.Fields{
			"variable": v.String(),
			"size":     len(v.Data),
		}).Warn("rollback_floor_malformed")

		return 0, nil
	default:
		return binary.LittleEndian.Uint32(v.Data), nil
	}
}

func (e *Engine) writeFloor(ctx context.Context, floor uint32) error {
	v := variable.Variable{
		Name:       e.opts.floorName,
		GUID:       e.opts.floorGUID,
		Attributes: variable.NonVolatile | variable.BootServiceAccess,
		Data:       binary.LittleEndian.AppendUint32(nil, floor),
	}

	err := e.store.Set(ctx, v)
	if errors.Is(err, variable.ErrAttributeMismatch) {
		if err := e.store.Delete(ctx, v.Name, v.GUID); err != nil {
			return err //nolint:wrapcheck
		}

		err = e.store.Set(ctx, v)
	}

	return err //nolint:wrapcheck
}

func parseVersion(field, raw string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, oops.In("settings").With("field", field, "value", raw).
			Wrapf(fmt.Errorf("%w: %w", ErrRejectedHeader, err), "invalid %s", field)
	}

	return uint32(n), nil
}

// checkHeader validates the versions of in against each other and the floor.
func (e *Engine) checkHeader(ctx context.Context, in SettingsPacket) (uint32, uint32, error) {
	version, err := parseVersion("Version", in.Version)
	if err != nil {
		return 0, 0, err
	}

	lsv, err := parseVersion("LowestSupportedVersion", in.LowestSupportedVersion)
	if err != nil {
		return 0, 0, err
	}

	if lsv > version {
		return 0, 0, oops.In("settings").With("version", version, "lsv", lsv).
			Wrapf(ErrRejectedHeader, "lowest supported version is above version")
	}

	floor, err := e.readFloor(ctx)
	if err != nil {
		return 0, 0, oops.In("settings").Wrapf(err, "failed to read rollback floor")
	}

	if version < floor {
		return 0, 0, oops.In("settings").With("version", version, "floor", floor).
			Wrapf(ErrRejectedHeader, "packet version is below rollback floor")
	}

	return version, lsv, nil
}

// Apply processes packet and writes the results document to out. Once the
// header is accepted Apply always ends in a cold reset; when the reset returns
// the error wraps platform.ErrResetReturned. A nil out is rejected up front.
func (e *Engine) Apply(ctx context.Context, packet []byte, token AuthToken, out io.Writer) error {
	log := e.log("Engine.Apply")

	if out == nil {
		return oops.In("settings").Wrapf(ErrInvalidValue, "no results writer")
	}

	var in SettingsPacket
	if err := xml.Unmarshal(packet, &in); err != nil {
		return oops.In("settings").Wrapf(err, "malformed settings packet")
	}

	version, lsv, err := e.checkHeader(ctx, in)
	if err != nil {
		log.WithError(err).Warn("settings_packet_rejected")
		return err
	}

	log = log.WithFields(logrus.Fields{"version": version, "lsv": lsv, "created_by": in.CreatedBy})
	log.WithField("settings", len(in.Settings)).Info("applying_settings_packet")

	results := ResultsPacket{
		XMLName:                xml.Name{}, //nolint:exhaustruct
		CreatedOn:              e.createdOn(),
		Version:                strconv.FormatUint(uint64(version), 10),
		LowestSupportedVersion: strconv.FormatUint(uint64(lsv), 10),
		Settings:               make([]SettingResult, 0, len(in.Settings)),
	}

	for _, s := range in.Settings {
		flags, err := e.applySetting(ctx, s, token)
		if err != nil {
			log.WithError(err).WithField("id", s.ID).Warn("setting_not_applied")
		}

		results.Settings = append(results.Settings, SettingResult{ID: s.ID, Result: StatusOf(err), Flags: flags})
	}

	floor, err := e.readFloor(ctx)
	if err == nil && lsv > floor {
		err = e.writeFloor(ctx, lsv)
	}

	if err != nil {
		log.WithError(err).Error("failed_to_raise_rollback_floor")
	}

	var outErr error

	doc, err := marshalIndent(results)
	if err == nil {
		_, err = out.Write(doc)
	}

	if err != nil {
		log.WithError(err).Error("failed_to_write_results")
		outErr = oops.In("settings").Wrapf(fmt.Errorf("%w: %w", ErrResultsNotWritten, err), "failed to write results")
	}

	e.resetter.ResetSystem(ctx, platform.ResetCold, e.opts.resetSubtype)

	return errors.Join(platform.ErrResetReturned, outErr)
}

func (e *Engine) applySetting(ctx context.Context, s Setting, token AuthToken) (Flags, error) {
	errs := oops.In("settings").With("id", s.ID)

	value, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s.Value))
	if err != nil {
		return 0, errs.Wrapf(fmt.Errorf("%w: %w", ErrInvalidValue, err), "failed to decode value")
	}

	if strings.HasPrefix(s.ID, e.opts.managedPrefix) {
		if e.access == nil {
			return 0, errs.Wrapf(ErrUnknownSetting, "no settings access")
		}

		flags, err := e.access.Set(ctx, s.ID, value, token)
		if err != nil {
			return flags, errs.Wrapf(err, "failed to set")
		}

		return flags, nil
	}

	v, n, err := varlist.Decode(value)
	if err != nil {
		return 0, errs.Wrapf(err, "failed to decode record")
	}

	if n != len(value) {
		return 0, errs.With("record", n, "value", len(value)).
			Wrapf(ErrInvalidValue, "trailing data after record")
	}

	if e.isFloor(v) {
		return 0, errs.Wrapf(variable.ErrWriteProtected, "rollback floor is not settable")
	}

	err = e.store.Delete(ctx, v.Name, v.GUID)
	if err != nil && !errors.Is(err, variable.ErrNotFound) {
		return 0, errs.With("variable", v.String()).Wrapf(err, "failed to delete")
	}

	if v.Size() == 0 {
		return FlagResetRequired, nil
	}

	if err := e.store.Set(ctx, v); err != nil {
		return 0, errs.With("variable", v.String()).Wrapf(err, "failed to write")
	}

	return FlagResetRequired, nil
}

// Dump returns a CurrentSettingsPacket describing every persisted variable.
// Variables that fail to read or encode are logged and left out.
func (e *Engine) Dump(ctx context.Context) ([]byte, error) {
	log := e.log("Engine.Dump")

	vars, err := e.store.List(ctx)
	if err != nil {
		return nil, oops.In("settings").Wrapf(err, "failed to list variables")
	}

	floor, err := e.readFloor(ctx)
	if err != nil {
		log.WithError(err).Warn("failed_to_read_rollback_floor")
	}

	packet := CurrentSettingsPacket{
		XMLName:                xml.Name{}, //nolint:exhaustruct
		CreatedOn:              e.createdOn(),
		Version:                floor,
		LowestSupportedVersion: floor,
		Settings:               make([]Setting, 0, len(vars)),
	}

	for _, v := range vars {
		if e.isFloor(v) {
			continue
		}

		if e.access != nil {
			if id, ok := e.access.Resolve(v.Name, v.GUID); ok {
				value, err := e.access.Get(ctx, id)
				if err != nil {
					log.WithError(err).WithField("id", id).Warn("failed_to_read_setting")
					continue
				}

				packet.Settings = append(packet.Settings, Setting{ID: id, Value: base64.StdEncoding.EncodeToString(value)})

				continue
			}
		}

		record, err := varlist.Marshal(v)
		if err != nil {
			log.WithError(err).WithField("variable", v.String()).Warn("failed_to_encode_variable")
			continue
		}

		packet.Settings = append(packet.Settings, Setting{ID: v.String(), Value: base64.StdEncoding.EncodeToString(record)})
	}

	doc, err := marshalIndent(packet)
	if err != nil {
		return nil, oops.In("settings").Wrapf(err, "failed to encode current settings")
	}

	return doc, nil
}
