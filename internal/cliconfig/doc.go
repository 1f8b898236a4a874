// Package cliconfig persists the CLI's single JSON configuration
// document (provider credentials, default provider/model, engine limits)
// to a file under the user's config directory, backed by
// github.com/spf13/viper the way the teacher's ConfigManagerNode and
// aipilotbyjd-linkflow-ai's platform config both load settings.
package cliconfig
