package common

// Version is the current llkit version as a string.
const Version string = "0.1.0"

// ProfileFileName is the name of the profile file `llkit emit` looks for when
// no path is given.
const ProfileFileName string = "llkit.toml"
