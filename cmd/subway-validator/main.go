package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/subway-topology-validator/expectations"
	"github.com/theoremus-urban-solutions/subway-topology-validator/geojsonexport"
	"github.com/theoremus-urban-solutions/subway-topology-validator/ingest"
	"github.com/theoremus-urban-solutions/subway-topology-validator/logging"
	"github.com/theoremus-urban-solutions/subway-topology-validator/model"
	"github.com/theoremus-urban-solutions/subway-topology-validator/report"
	"github.com/theoremus-urban-solutions/subway-topology-validator/validator"
	"github.com/theoremus-urban-solutions/subway-topology-validator/validatorconfig"
)

var (
	elementsFile      string
	expectationsFile  string
	outputFile        string
	configFile        string
	countryFilter     string
	verbose           bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "subway-validator",
		Short: "Validates subway/light-rail network structure extracted from OpenStreetMap",
		Long: `subway-validator reconstructs subway and light rail networks from an
Overpass-API element stream and checks the result against a table of
expected station, line and interchange counts.

Examples:
  subway-validator validate -i elements.json -e cities.csv
  subway-validator fetch-expectations -o cities.json
  subway-validator export-geojson -i elements.json -e cities.csv -o unused.geojson`,
	}

	var validateCmd = &cobra.Command{
		Use:   "validate",
		Short: "Validate one or more cities against expected counts",
		RunE:  runValidate,
	}
	validateCmd.Flags().StringVarP(&elementsFile, "input", "i", "", "Element-record JSON file (required)")
	validateCmd.Flags().StringVarP(&expectationsFile, "expectations", "e", "", "City expectations CSV file (required)")
	validateCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	validateCmd.Flags().StringVar(&configFile, "config", "", "Tolerance config YAML file")
	validateCmd.Flags().StringVar(&countryFilter, "country", "", "Restrict validation to one country")
	validateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	_ = validateCmd.MarkFlagRequired("input")
	_ = validateCmd.MarkFlagRequired("expectations")
	rootCmd.AddCommand(validateCmd)

	var fetchCmd = &cobra.Command{
		Use:   "fetch-expectations",
		Short: "Download the published city expectations sheet and print its parsed rows as JSON",
		RunE:  runFetchExpectations,
	}
	fetchCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	rootCmd.AddCommand(fetchCmd)

	var geojsonCmd = &cobra.Command{
		Use:   "export-geojson",
		Short: "Export unused subway entrances as a GeoJSON FeatureCollection",
		RunE:  runExportGeoJSON,
	}
	geojsonCmd.Flags().StringVarP(&elementsFile, "input", "i", "", "Element-record JSON file (required)")
	geojsonCmd.Flags().StringVarP(&expectationsFile, "expectations", "e", "", "City expectations CSV file (required)")
	geojsonCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	_ = geojsonCmd.MarkFlagRequired("input")
	_ = geojsonCmd.MarkFlagRequired("expectations")
	rootCmd.AddCommand(geojsonCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	log := logging.NewDefault()
	if verbose {
		log = logging.New(logging.Config{Level: logging.LevelDebug, Format: "text"})
	}

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}
	if countryFilter != "" {
		cfg.CountryFilter = countryFilter
	}

	elements, exps, err := loadInputs(log)
	if err != nil {
		return err
	}

	cities, _ := validator.Run(elements, exps, cfg)
	for _, city := range cities {
		log.ValidationComplete(city.Expectations.Name, city.IsGood(),
			len(city.Collector.Errors()), len(city.Collector.Warnings()))
	}

	run := report.NewRun(validator.Results(cities))
	out, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}

	if outputFile != "" {
		return os.WriteFile(outputFile, out, 0o644)
	}
	fmt.Println(string(out))

	for _, r := range run.Results {
		if !r.IsGood() {
			os.Exit(1)
		}
	}
	return nil
}

func runFetchExpectations(cmd *cobra.Command, args []string) error {
	log := logging.NewDefault()
	exps, err := expectations.Fetch(log)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(exps, "", "  ")
	if err != nil {
		return err
	}
	if outputFile != "" {
		return os.WriteFile(outputFile, out, 0o644)
	}
	fmt.Println(string(out))
	return nil
}

func runExportGeoJSON(cmd *cobra.Command, args []string) error {
	log := logging.NewDefault()
	elements, exps, err := loadInputs(log)
	if err != nil {
		return err
	}

	cfg := validatorconfig.Default()
	cities, _ := validator.Run(elements, exps, cfg)

	used := make(map[model.ID]bool)
	for _, city := range cities {
		for id := range city.Stations {
			used[id] = true
		}
	}

	fc := geojsonexport.UnusedEntrances(elements, used)
	out, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encoding geojson: %w", err)
	}
	if outputFile != "" {
		return os.WriteFile(outputFile, out, 0o644)
	}
	fmt.Println(string(out))
	return nil
}

func loadConfig(log *logging.Logger) (*validatorconfig.Config, error) {
	if configFile == "" {
		cfg := validatorconfig.Default()
		cfg.Logger = log
		return cfg, nil
	}
	cfg, err := validatorconfig.Load(configFile)
	if err != nil {
		return nil, err
	}
	cfg.Logger = log
	return cfg, nil
}

func loadInputs(log *logging.Logger) ([]*model.Element, []model.Expectations, error) {
	ef, err := os.Open(elementsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", elementsFile, err)
	}
	defer ef.Close()
	elements, err := ingest.Decode(ef)
	if err != nil {
		return nil, nil, fmt.Errorf("decoding %s: %w", elementsFile, err)
	}

	cf, err := os.Open(expectationsFile)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", expectationsFile, err)
	}
	defer cf.Close()
	exps, err := expectations.Load(cf, log)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", expectationsFile, err)
	}

	return elements, exps, nil
}
