package validator

import "unicode/utf8"

func ClubName(name string) bool {
	return utf8.RuneCountInString(name) >= 1 && utf8.RuneCountInString(name) <= 100
}

func ClubDescription(description string) bool {
	return utf8.RuneCountInString(description) <= 400
}

func ClubLocation(location string) bool {
	return utf8.RuneCountInString(location) <= 150
}

func ClubLogoURL(logoURL string) bool {
	return utf8.RuneCountInString(logoURL) <= 500
}
