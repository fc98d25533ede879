package dialog

import (
	"fmt"

	"guidely/models"
)

// Response generators are pure functions from turn parameters to fulfillment
// text. Each tolerates the parameter shapes the dialog platform actually
// sends (scalar, list, or object) via the models normalization helpers.

// SetLanguagePreference confirms the guide language and asks for scheduling.
// A list of languages resolves to its first element.
func SetLanguagePreference(preferred interface{}) string {
	language := models.FirstString(preferred)
	return fmt.Sprintf("Sure! %s-speaking guide will be arranged for you. When do you plan to schedule your tour?.", language)
}

// GetGuideDuration confirms the tour duration and asks for contact details.
// The duration must arrive as a non-empty list of {amount, unit} entities;
// anything else yields a clarification request.
func GetGuideDuration(duration interface{}) string {
	entities := models.Durations(duration)
	if len(entities) == 0 {
		return "I'm sorry, I couldn't understand the duration. Please provide it in a valid format, such as '5 days'."
	}
	formatted := fmt.Sprintf("%d %s", entities[0].Amount, entities[0].Unit)
	return fmt.Sprintf("Understood. Checking tour guide availability for %s. In order to finish up your booking, we need your name and email address. This will enable us to send you a summary.", formatted)
}

// CheckTourGuideAvailability confirms the requested date and prompts for the
// tour duration. The date is already entity-extracted by the router.
func CheckTourGuideAvailability(dateText string) string {
	return fmt.Sprintf("Sure, we can help you find guides on %s. Please specify the duration of the tour in day(s).", FormatDate(dateText))
}

// SendReceipt thanks the visitor and confirms where the summary is sent.
// The person value may be a scalar, a list of candidates, or a {name: ...}
// object.
func SendReceipt(email string, person interface{}) string {
	name := models.PersonName(person)
	return fmt.Sprintf("Thanks %s for choosing our services. Your booking summary and payment information will be sent to %s within the next 24 hours. Have a fantastic day and make the most of your Bali adventure!", name, email)
}

// UserConfirmation requests the contact details needed to finalize a booking.
func UserConfirmation() string {
	return "To finalize your booking, kindly share your name and email address so I can forward you the summary."
}

// DefaultWelcome greets a new visitor.
func DefaultWelcome() string {
	return "Hey there! Interested in exploring Bali with a guide? I'm here to make it easy for you to book local guides who speak English, Bahasa, Chinese, Korean, or Japanese!"
}

// ChangeBookingDate confirms a mid-flow date correction with the raw date
// text and prompts for the duration.
func ChangeBookingDate(date string) string {
	return fmt.Sprintf("Alright, I've modified your booking date to %s. What's the expected duration of the tour in day(s)?", date)
}

// ChangeGuideLanguage confirms a mid-flow guide language correction.
func ChangeGuideLanguage(language string) string {
	return fmt.Sprintf("Okay, I've updated your guide language preference to %s. Is there anything else related to language or date you'd like to address?", language)
}
