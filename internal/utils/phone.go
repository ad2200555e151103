package utils

import "regexp"

var e164Regex = regexp.MustCompile(`^\+[1-9]\d{7,14}$`) // ITU-T E.164

// IsE164 reports basic E.164 compliance
func IsE164(number string) bool { return e164Regex.MatchString(number) }
