package cmd

import (
	"bytes"
	"io/ioutil"
	"reflect"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/semtrx/lora/profile"
)

// envPrefix is prepended to every environment variable that overrides a
// configuration setting, e.g. LR1110CFG_LORA__SPREADING_FACTOR.
const envPrefix = "LR1110CFG"

var (
	cfgFile string
	version string
)

var rootCmd = &cobra.Command{
	Use:   "lr1110cfg",
	Short: "LR1110 radio profile tool",
	Long: `lr1110cfg validates LR1110 radio profiles and prints the command frames
that configure the radio for them.
	> the profile is read from a TOML file, see: lr1110cfg configfile`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.PersistentFlags().Int("log-level", 4, "debug=5, info=4, error=2, fatal=1, panic=0")

	viper.BindPFlag("general.log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(airtimeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute executes the root command.
func Execute(v string) {
	version = v

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func initConfig() {
	if cfgFile != "" {
		b, err := ioutil.ReadFile(cfgFile)
		if err != nil {
			log.WithError(err).WithField("config", cfgFile).Fatal("error loading config file")
		}
		viper.SetConfigType("toml")
		if err := viper.ReadConfig(bytes.NewBuffer(b)); err != nil {
			log.WithError(err).WithField("config", cfgFile).Fatal("error loading config file")
		}
	} else {
		viper.SetConfigName("lr1110cfg")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.config/lr1110cfg")
		if err := viper.ReadInConfig(); err != nil {
			switch err.(type) {
			case viper.ConfigFileNotFoundError:
				log.Debug("no configuration file found, using defaults")
			default:
				log.WithError(err).Fatal("read configuration file error")
			}
		}
	}

	viper.BindEnv("general.log_level", envPrefix+"_GENERAL__LOG_LEVEL")
	viperBindEnvs(viper.GetViper(), profile.Default())

	log.SetLevel(log.Level(uint8(viper.GetInt("general.log_level"))))
}

// loadProfile decodes the profile, resolves its region and validates it.
func loadProfile() (profile.Profile, error) {
	p, err := profile.Decode(viper.GetViper())
	if err != nil {
		return p, err
	}
	if err := p.ApplyRegion(); err != nil {
		return p, errors.Wrap(err, "apply region error")
	}
	if err := p.Validate(); err != nil {
		return p, errors.Wrapf(err, "profile %s", p.Name)
	}
	return p, nil
}

func viperBindEnvs(v *viper.Viper, iface interface{}, parts ...string) {
	ifv := reflect.ValueOf(iface)
	ift := reflect.TypeOf(iface)
	for i := 0; i < ift.NumField(); i++ {
		fv := ifv.Field(i)
		t := ift.Field(i)
		tv, ok := t.Tag.Lookup("mapstructure")
		if !ok {
			tv = strings.ToLower(t.Name)
		}
		if tv == "-" {
			continue
		}

		switch fv.Kind() {
		case reflect.Struct:
			viperBindEnvs(v, fv.Interface(), append(parts, tv)...)
		default:
			// Bash doesn't allow env variable names with a dot so
			// bind the double underscore version.
			keyDot := strings.Join(append(parts, tv), ".")
			keyUnderscore := strings.Join(append(parts, tv), "__")
			v.BindEnv(keyDot, envPrefix+"_"+strings.ToUpper(keyUnderscore))
		}
	}
}
