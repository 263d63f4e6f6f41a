package cmd

type LogFilters struct {
	Since  string
	Until  string
	Author string
}

// Turn into CLI args we can pass to `git log`
func (f LogFilters) ToArgs() []string {
	args := []string{}

	if f.Author != "" {
		args = append(args, "--author", f.Author)
	}

	if f.Since != "" {
		args = append(args, "--since", f.Since)
	}

	if f.Until != "" {
		args = append(args, "--until", f.Until)
	}

	return args
}
