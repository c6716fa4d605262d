// Package config manages user-level settings stored at ~/.read-lnk/config.yaml
// and READ_LNK_* environment variables. Settings only provide defaults;
// command-line flags always win.
package config
