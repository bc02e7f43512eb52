package payment

import "strings"

var InstructionMap = map[Method][]string{
	MethodCard: {
		"Enter your card number, expiry date and CVC",
		"Double-check the card details before submitting",
		"Wait for the charge of {{amount}} to be confirmed",
	},

	MethodAirtelMoney: {
		"Make sure your Airtel Money wallet holds at least {{amount}}",
		"Approve the payment prompt sent to {{phone}}",
		"Enter your wallet PIN to complete the transaction",
	},

	MethodCashOnDeliv: {
		"Your order will be delivered to the address on file",
		"Prepare {{amount}} in cash for the courier",
		"Pay the courier on arrival and keep the receipt",
	},
}

func GetInstructions(method Method) []string {
	if steps, ok := InstructionMap[method]; ok {
		return steps
	}

	return []string{
		"Follow the payment instructions shown on this page",
	}
}

type InstructionVars map[string]string

func InjectVariables(steps []string, vars InstructionVars) []string {
	result := make([]string, 0, len(steps))

	for _, step := range steps {
		updated := step
		for key, value := range vars {
			updated = strings.ReplaceAll(
				updated,
				"{{"+key+"}}",
				value,
			)
		}
		result = append(result, updated)
	}

	return result
}
