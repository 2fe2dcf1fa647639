package payment

import (
	"strings"
	"unicode/utf8"
)

const minCardNumberLen = 13

// ValidateCard checks the card number length and classifies the brand by its
// first digit. Expiry and CVV are accepted as given.
func ValidateCard(req ValidateCardRequest) (*ValidateCardResponse, error) {
	n := req.CardNumber
	if strings.TrimSpace(n) == "" || utf8.RuneCountInString(n) < minCardNumberLen {
		return nil, invalid("Invalid card number")
	}
	r := []rune(n)
	return &ValidateCardResponse{
		IsValid:     true,
		CardType:    CardBrand(n),
		Last4Digits: string(r[len(r)-4:]),
		ExpiryValid: true,
	}, nil
}

func CardBrand(number string) string {
	if number == "" {
		return "Unknown"
	}
	switch number[0] {
	case '4':
		return "Visa"
	case '5':
		return "Mastercard"
	case '3':
		return "American Express"
	case '6':
		return "Discover"
	default:
		return "Unknown"
	}
}
