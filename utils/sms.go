package utils

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SendOTPSMS delivers a login code to a phone number through the configured
// SMS gateway. When SMS_GATEWAY_URL is unset (local development) the code is
// logged instead of sent.
func SendOTPSMS(phone, otp string) error {
	gatewayURL := os.Getenv("SMS_GATEWAY_URL")
	if gatewayURL == "" {
		log.Printf("SMS gateway not configured, OTP for %s: %s", phone, otp)
		return nil
	}

	agent := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(agent)

	req := agent.Request()
	req.Header.SetMethod(fiber.MethodPost)
	req.SetRequestURI(gatewayURL)
	req.Header.SetContentType(fiber.MIMEApplicationJSON)
	agent.Timeout(10 * time.Second)
	agent.JSON(fiber.Map{
		"to":      phone,
		"message": fmt.Sprintf("Your KhanaKart login code is %s. Valid for 10 minutes.", otp),
		"api_key": os.Getenv("SMS_GATEWAY_KEY"),
	})

	if err := agent.Parse(); err != nil {
		return err
	}

	code, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return errs[0]
	}
	if code >= 400 {
		return fmt.Errorf("sms gateway returned status %d", code)
	}
	return nil
}
