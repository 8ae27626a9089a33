package primebench

import (
	"strings"

	"github.com/asecurityteam/runhttp"
	"github.com/asecurityteam/settings/v2"
	"github.com/serverless-bench/primebench/pkg/workload"
)

// Help generates the environment variable listing for a runtime whose
// prime benchmark defaults to defaultTargetCount. Any extra settings
// components the binary loads are listed after the defaults.
func Help(defaultTargetCount int, extra ...interface{}) (string, error) {
	components := append([]interface{}{
		runhttp.NewComponent(),
		&LambdaComponent{},
		workload.NewComponent(defaultTargetCount),
	}, extra...)
	groups := make([]settings.Group, 0, len(components))
	for _, c := range components {
		g, err := settings.GroupFromComponent(c)
		if err != nil {
			return "", err
		}
		groups = append(groups, g)
	}
	return settings.ExampleEnvGroups([]settings.Group{&settings.SettingGroup{
		NameValue:   strings.ToUpper(settingsPrefix),
		GroupValues: groups,
	}}), nil
}
