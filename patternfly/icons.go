package patternfly

import (
	"strings"

	"github.com/playwright-community/playwright-go"
)

// Icon names the PatternFly default icons so widget code does not have to
// pass around fragments of markup class names.
//
// Reference: https://www.patternfly.org/styles/icons/
type Icon string

const (
	IconNone Icon = ""

	IconAdd           Icon = "pficon-add-circle-o"
	IconAngleDown     Icon = "fa-angle-down"
	IconAngleLeft     Icon = "fa-angle-left"
	IconAngleRight    Icon = "fa-angle-right"
	IconAngleUp       Icon = "fa-angle-up"
	IconApplications  Icon = "pficon-applications"
	IconArrow         Icon = "pficon-arrow"
	IconCluster       Icon = "pficon-cluster"
	IconContainerNode Icon = "pficon-container-node"
	IconCPU           Icon = "pficon-cpu"
	IconError         Icon = "pficon-error-circle-o"
	IconFolderOpen    Icon = "pficon-folder-open"
	IconHome          Icon = "pficon-home"
	IconOK            Icon = "pficon-ok"
	IconWarning       Icon = "pficon-warning-triangle-o"
	IconRefresh       Icon = "fa-refresh"
	IconUser          Icon = "pficon-user"
)

var knownIcons = map[string]Icon{
	string(IconAdd):           IconAdd,
	string(IconAngleDown):     IconAngleDown,
	string(IconAngleLeft):     IconAngleLeft,
	string(IconAngleRight):    IconAngleRight,
	string(IconAngleUp):       IconAngleUp,
	string(IconApplications):  IconApplications,
	string(IconArrow):         IconArrow,
	string(IconCluster):       IconCluster,
	string(IconContainerNode): IconContainerNode,
	string(IconCPU):           IconCPU,
	string(IconError):         IconError,
	string(IconFolderOpen):    IconFolderOpen,
	string(IconHome):          IconHome,
	string(IconOK):            IconOK,
	string(IconWarning):       IconWarning,
	string(IconRefresh):       IconRefresh,
	string(IconUser):          IconUser,
}

// IconFromClasses resolves the icon constant from an element's class list.
// It returns IconNone when no pficon-/fa- class matches a known icon.
func IconFromClasses(classes []string) Icon {
	for _, c := range classes {
		if !strings.HasPrefix(c, "pficon-") && !strings.HasPrefix(c, "fa-") {
			continue
		}
		if icon, ok := knownIcons[c]; ok {
			return icon
		}
	}
	return IconNone
}

// iconFromElement scans the element's children for exactly one icon span and
// maps its class to an Icon constant. Zero or multiple icon children are
// ambiguous and resolve to IconNone.
func iconFromElement(scope playwright.Locator) (Icon, error) {
	els := scope.Locator(`xpath=.//*[contains(@class, "pficon") or contains(@class, "fa")]`)
	n, err := els.Count()
	if err != nil {
		return IconNone, err
	}
	if n != 1 {
		return IconNone, nil
	}
	cls, err := elementClasses(els.First())
	if err != nil {
		return IconNone, err
	}
	return IconFromClasses(cls), nil
}
