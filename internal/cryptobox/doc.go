// Package cryptobox provides symmetric encryption of note fields.
//
// Encryption uses NaCl secretbox with a random 24-byte nonce prepended
// to the ciphertext, base64-encoded for storage inside the JSON note
// document. Re-encrypting the same plaintext produces different output
// (non-deterministic encryption).
//
// # Key material
//
// The user's passphrase is copied directly into the 32-byte secretbox
// key (truncated or zero-padded). No key derivation function is
// applied beyond what the primitive requires. There is no stored
// password hash: a wrong passphrase is detected only by a failed
// decryption.
package cryptobox
