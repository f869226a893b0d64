// Package configs manages user configuration for notevault.
//
// Configuration is stored in TOML format at the user config dir
// (typically ~/.config/notevault/config.toml):
//
//   - [session] the username of the last login. Never a key or
//     passphrase; those stay in process memory only.
//   - [sync] the remote backend selection, its URL and credentials,
//     and the request timeout.
//
// Encrypted note documents live separately under the data dir
// (typically ~/.local/share/notevault), one notes_<user>.encrypted
// file per user.
//
// Global settings (the two directory paths) are initialized at startup
// in UserVaultSettings; tests swap the pointer for temp directories.
package configs
