package config

import (
	"flag"
)

// ParseFlags parses all configuration flags of flag.CommandLine.
//
// Flags:
//
//	-u full name of the user
//	-s site name (the first positional argument is used when -s is absent)
//	-c site counter, 1 or greater
//	-t template tier: name, one-letter alias or numeric id
//	-clip copy the password to the clipboard
//	-identicon show the identicon of the master password
//	-db site profile database file
//	-log-file log file path
//	-log-level log level (debug, info, warn, error)
//	-config json file path with configs
func ParseFlags() *StructuredConfig {
	var fullName string
	var siteName string
	var counter Counter
	var tmpl string
	var clipboard bool
	var identicon bool
	var dsn string
	var logFile string
	var logLevel string
	var jsonConfigPath string

	flag.StringVar(&fullName, "u", "", "Full name of the user")
	flag.StringVar(&siteName, "s", "", "Site name")
	flag.Var(&counter, "c", "Site counter (1 or greater)")
	flag.StringVar(&tmpl, "t", "", "Template tier: maximum|long|medium|short|basic|pin, x|l|m|s|b|i or 10..60")
	flag.BoolVar(&clipboard, "clip", false, "Copy the password to the clipboard")
	flag.BoolVar(&identicon, "identicon", false, "Show the identicon of the master password")
	flag.StringVar(&dsn, "db", "", "Site profile database file (empty disables profiles)")
	flag.StringVar(&logFile, "log-file", "", "Log file path")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path")

	flag.Parse()

	if siteName == "" {
		siteName = flag.Arg(0)
	}

	return &StructuredConfig{
		User: User{
			FullName: fullName,
		},
		Site: Site{
			Name:     siteName,
			Counter:  counter,
			Template: tmpl,
		},
		UI: UI{
			Clipboard: clipboard,
			Identicon: identicon,
		},
		Storage: Storage{
			DSN: dsn,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		JSONFilePath: jsonConfigPath,
	}
}
