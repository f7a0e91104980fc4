package domain

// Host is one SSH host candidate parsed from an OpenSSH client config.
type Host struct {
	// Alias is the Host pattern, used for matching and for `ssh <alias>`.
	Alias string

	// Hostname is the HostName directive, if any.
	Hostname string

	// Port is the Port directive, if any. Empty means the SSH default.
	Port string

	// User is the User directive, if any.
	User string
}

// Addr returns the "hostname:port" display form, defaulting the port to 22.
func (h Host) Addr() string {
	hostname := h.Hostname
	if hostname == "" {
		hostname = "N/A"
	}
	port := h.Port
	if port == "" {
		port = "22"
	}
	return hostname + ":" + port
}

// SSHCommand returns the shell command carried to the launcher action.
func (h Host) SSHCommand() string {
	return "ssh " + h.Alias
}

// ScoredHost pairs a host with its similarity score for one ranking pass.
type ScoredHost struct {
	Host
	Score float64
}
