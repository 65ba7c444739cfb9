package cli

import (
	"fmt"

	"github.com/fatih/color"
)

// displayWelcomeBanner exibe o banner de boas-vindas com informações de versão.
func displayWelcomeBanner(versionStr string) {
	banner := `
         /$$$$$$  /$$      /$$  /$$$$$$       /$$$$$$
        /$$__  $$| $$  /$ | $$ /$$__  $$     |_  $$_/
       | $$  \ $$| $$ /$$$| $$| $$  \__/       | $$   /$$$$$$$  /$$    /$$
       | $$$$$$$$| $$/$$ $$ $$|  $$$$$$        | $$  | $$__  $$|  $$  /$$/
       | $$__  $$| $$$$_  $$$$ \____  $$       | $$  | $$  \ $$ \  $$/$$/
       | $$  | $$| $$$/ \  $$$ /$$  \ $$       | $$  | $$  | $$  \  $$$/
       | $$  | $$| $$/   \  $$|  $$$$$$/      /$$$$$$| $$  | $$   \  $/
       |__/  |__/|__/     \__/ \______/      |______/|__/  |__/    \_/
       `
	red := color.New(color.FgRed, color.Bold).SprintFunc()
	blue := color.New(color.FgBlue, color.Bold).SprintFunc()

	fmt.Println(red(banner))
	fmt.Println(blue(fmt.Sprintf("AWS Inventory CLI (v%s)", versionStr)))
}
