package utils

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestAppNameHook(t *testing.T) {
	t.Run("TextPrefixesMessage", func(t *testing.T) {
		entry := &logrus.Entry{Message: "Quote request accepted", Data: logrus.Fields{}}
		assert.NoError(t, (&appNameHook{appName: "quote-service"}).Fire(entry))
		assert.Equal(t, "[quote-service] Quote request accepted", entry.Message)
		assert.NotContains(t, entry.Data, "app")
	})

	t.Run("JSONAddsField", func(t *testing.T) {
		entry := &logrus.Entry{Message: "Quote request accepted", Data: logrus.Fields{}}
		assert.NoError(t, (&appNameHook{appName: "quote-service", asField: true}).Fire(entry))
		assert.Equal(t, "Quote request accepted", entry.Message)
		assert.Equal(t, "quote-service", entry.Data["app"])
	})
}

func TestQuoteLogger(t *testing.T) {
	entry := QuoteLogger("toronto", "van", true)
	assert.Equal(t, logrus.Fields{"location": "toronto", "vehicleType": "van", "hasLogo": true}, entry.Data)
}
