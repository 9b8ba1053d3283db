package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"magvar-service/internal/adapters/querylog"
	"magvar-service/internal/api/dto"
	"magvar-service/internal/domain"
	"magvar-service/internal/geomag"
	"magvar-service/internal/services"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var errInvalidDate = errors.New("invalid date: use RFC 3339, YYYY-MM-DD or a decimal year")

// cliOptions holds flag values shared by the subcommands.
type cliOptions struct {
	lat       float64
	lon       float64
	latDM     string
	lonDM     string
	alt       float64
	date      string
	heading   float64
	compass   float64
	direction string
	verbose   bool

	now func() time.Time
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &cliOptions{now: time.Now}
	svc := services.NewFieldService(geomag.WMM2025(), querylog.NewMemoryQueryLog(), nil)

	root := &cobra.Command{
		Use:           "magvar",
		Short:         "Magnetic variation from the World Magnetic Model",
		Long:          `Computes declination, inclination and intensity of the geomagnetic main field (WMM2025, degree 12).`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.PersistentPreRun = func(*cobra.Command, []string) {
		if !opts.verbose {
			log.SetOutput(io.Discard)
		}
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log operation timings to stderr")
	root.PersistentFlags().StringVar(&opts.date, "date", "", "date as RFC 3339, YYYY-MM-DD or decimal year (default now)")

	fieldCmd := &cobra.Command{
		Use:   "field",
		Short: "Full field vector and secular variation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.resolvePosition(); err != nil {
				return err
			}
			year, err := opts.decimalYear()
			if err != nil {
				return err
			}
			coords := domain.GeoCoordinates{Lat: opts.lat, Lon: opts.lon, AltKm: opts.alt}
			f, err := svc.Field(cmd.Context(), coords, year)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), fieldResponse(coords, f))
		},
	}
	addPositionFlags(fieldCmd, opts)
	fieldCmd.Flags().Float64Var(&opts.alt, "alt", 0, "altitude above the ellipsoid in km")

	variationCmd := &cobra.Command{
		Use:   "variation",
		Short: "Declination and its annual change at sea level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.resolvePosition(); err != nil {
				return err
			}
			year, err := opts.decimalYear()
			if err != nil {
				return err
			}
			v, err := svc.Variation(cmd.Context(), opts.lat, opts.lon, year)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.VariationResponse{
				Model:         modelResponse(v.ModelInfo),
				Latitude:      opts.lat,
				Longitude:     opts.lon,
				Position:      domain.FormatCoordinate(opts.lat, opts.lon),
				Variation:     v.Declination,
				VariationText: services.FormatVariation(v.Declination),
				AnnualChange:  v.AnnualChange,
			})
		},
	}
	addPositionFlags(variationCmd, opts)

	headingCmd := &cobra.Command{
		Use:   "heading",
		Short: "Convert between true and compass headings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.resolvePosition(); err != nil {
				return err
			}
			year, err := opts.decimalYear()
			if err != nil {
				return err
			}
			res, err := svc.ConvertHeading(cmd.Context(), services.HeadingRequest{
				Lat:         opts.lat,
				Lon:         opts.lon,
				DecimalYear: year,
				Heading:     opts.heading,
				Direction:   services.HeadingDirection(opts.direction),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.HeadingResponse{
				Model:         modelResponse(res.Variation.ModelInfo),
				Position:      domain.FormatCoordinate(opts.lat, opts.lon),
				Direction:     string(res.Direction),
				Input:         res.Input,
				Output:        res.Output,
				Variation:     res.Variation.Declination,
				VariationText: services.FormatVariation(res.Variation.Declination),
			})
		},
	}
	addPositionFlags(headingCmd, opts)
	headingCmd.Flags().Float64Var(&opts.heading, "heading", 0, "heading in degrees")
	headingCmd.Flags().StringVar(&opts.direction, "direction", string(services.TrueToCompassDirection), "true_to_compass or compass_to_true")
	_ = headingCmd.MarkFlagRequired("heading")

	compassCmd := &cobra.Command{
		Use:   "compass-error",
		Short: "Compass error for a known true heading and compass reading",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.resolvePosition(); err != nil {
				return err
			}
			year, err := opts.decimalYear()
			if err != nil {
				return err
			}
			res, err := svc.CompassError(cmd.Context(), services.CompassErrorRequest{
				Lat:            opts.lat,
				Lon:            opts.lon,
				DecimalYear:    year,
				TrueHeading:    opts.heading,
				CompassReading: opts.compass,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.CompassErrorResponse{
				Model:           modelResponse(res.Variation.ModelInfo),
				Position:        domain.FormatCoordinate(opts.lat, opts.lon),
				Variation:       res.Variation.Declination,
				VariationText:   services.FormatVariation(res.Variation.Declination),
				TrueHeading:     res.TrueHeading,
				MagneticHeading: res.MagneticHeading,
				CompassReading:  res.CompassReading,
				CompassError:    res.Error,
			})
		},
	}
	addPositionFlags(compassCmd, opts)
	compassCmd.Flags().Float64Var(&opts.heading, "true-heading", 0, "true heading in degrees")
	compassCmd.Flags().Float64Var(&opts.compass, "compass", 0, "compass reading in degrees")
	_ = compassCmd.MarkFlagRequired("true-heading")
	_ = compassCmd.MarkFlagRequired("compass")

	modelCmd := &cobra.Command{
		Use:   "model",
		Short: "Describe the compiled-in coefficient set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := svc.Model
			if err := m.Validate(); err != nil {
				return err
			}
			c := m.Constants()
			return printJSON(cmd.OutOrStdout(), dto.ModelInfoResponse{
				Name:             c.Name,
				Label:            m.Label(),
				Epoch:            c.Epoch,
				ReleaseDate:      c.ReleaseDate,
				ValidityYears:    c.ValidityYears,
				MaxDegree:        m.MaxDegree(),
				CoefficientCount: len(m.Coefficients()),
			})
		},
	}

	root.AddCommand(fieldCmd, variationCmd, headingCmd, compassCmd, modelCmd)
	return root
}

func addPositionFlags(cmd *cobra.Command, opts *cliOptions) {
	cmd.Flags().Float64Var(&opts.lat, "lat", 0, "geodetic latitude in degrees")
	cmd.Flags().Float64Var(&opts.lon, "lon", 0, "longitude in degrees, east positive")
	cmd.Flags().StringVar(&opts.latDM, "lat-dm", "", `latitude as degrees and decimal minutes, e.g. "51 30.5 N"`)
	cmd.Flags().StringVar(&opts.lonDM, "lon-dm", "", `longitude as degrees and decimal minutes, e.g. "0 7.8 W"`)
	cmd.MarkFlagsOneRequired("lat", "lat-dm")
	cmd.MarkFlagsOneRequired("lon", "lon-dm")
	cmd.MarkFlagsMutuallyExclusive("lat", "lat-dm")
	cmd.MarkFlagsMutuallyExclusive("lon", "lon-dm")
}

// resolvePosition converts --lat-dm/--lon-dm into decimal degrees.
func (o *cliOptions) resolvePosition() error {
	if o.latDM != "" {
		dm, err := domain.ParseDM(o.latDM)
		if err != nil {
			return fmt.Errorf("--lat-dm: %w", err)
		}
		if o.lat, err = dm.Latitude(); err != nil {
			return fmt.Errorf("--lat-dm: %w", err)
		}
	}
	if o.lonDM != "" {
		dm, err := domain.ParseDM(o.lonDM)
		if err != nil {
			return fmt.Errorf("--lon-dm: %w", err)
		}
		if o.lon, err = dm.Longitude(); err != nil {
			return fmt.Errorf("--lon-dm: %w", err)
		}
	}
	return nil
}

// decimalYear resolves the --date flag.
func (o *cliOptions) decimalYear() (float64, error) {
	raw := strings.TrimSpace(o.date)
	if raw == "" {
		return geomag.DecimalYear(o.now()), nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return geomag.DecimalYear(t), nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return geomag.DecimalYear(t), nil
	}
	y, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("%q: %w", raw, errInvalidDate)
	}
	return y, nil
}

func modelResponse(info domain.ModelInfo) dto.ModelResponse {
	return dto.ModelResponse{
		Name:            info.Model,
		Epoch:           info.Epoch,
		DecimalYear:     info.DecimalYear,
		YearsFromEpoch:  info.YearsFromEpoch,
		OutsideValidity: info.OutsideValidity,
	}
}

func fieldResponse(coords domain.GeoCoordinates, f domain.MagneticField) dto.FieldResponse {
	res := dto.FieldResponse{
		Model:           modelResponse(f.ModelInfo),
		Latitude:        coords.Lat,
		Longitude:       coords.Lon,
		AltitudeKm:      coords.AltKm,
		BearingDefined:  f.BearingDefined,
		Inclination:     f.Inclination,
		InclinationRate: f.InclinationRate,
		Total:           f.Total,
		TotalRate:       f.TotalRate,
		Horizontal:      f.Horizontal,
		HorizontalRate:  f.HorizontalRate,
		North:           f.North,
		East:            f.East,
		Down:            f.Down,
		NorthRate:       f.NorthRate,
		EastRate:        f.EastRate,
		DownRate:        f.DownRate,
	}
	if f.BearingDefined {
		d, dd := f.Declination, f.DeclinationRate
		res.Declination = &d
		res.DeclinationRate = &dd
	}
	return res
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
