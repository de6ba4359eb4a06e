// Prompt assembly. Templates are kept as data, separate from orchestration,
// so wording can be tuned without touching control flow. Both builders are
// pure: identical input yields byte-identical output, no I/O, no randomness.
package generator

import "fmt"

// DescriptionPromptData carries every field interpolated into the event
// description prompt. Empty optional fields render as blank values after
// their label; the label line itself is always present.
type DescriptionPromptData struct {
	EventName        string
	EventType        string
	Category         string
	LocationDetails  string
	TimeInfo         string
	VenueDescription string
	RecurringInfo    string
	Audience         string
	Example          string
}

// ExpectationsPromptData carries every field interpolated into the volunteer
// expectations prompt. ArrivalTime is the precomputed start-minus-45-minutes
// reading; MultiDay reflects string inequality of the start and end dates.
type ExpectationsPromptData struct {
	EventName   string
	EventType   string
	TimeInfo    string
	ArrivalTime string
	MultiDay    bool
	Description string
	Example     string
}

// BuildDescriptionPrompt interpolates the data into the fixed description
// instruction template.
func BuildDescriptionPrompt(d DescriptionPromptData) string {
	return fmt.Sprintf(descriptionPromptTemplate,
		d.EventName,
		d.EventType,
		d.Category,
		d.LocationDetails,
		d.TimeInfo,
		d.VenueDescription,
		d.RecurringInfo,
		d.Audience,
		d.Audience,
		d.Example,
	)
}

// BuildExpectationsPrompt interpolates the data into the fixed volunteer
// expectations instruction template.
func BuildExpectationsPrompt(d ExpectationsPromptData) string {
	multiDay := "No"
	if d.MultiDay {
		multiDay = "Yes"
	}
	return fmt.Sprintf(expectationsPromptTemplate,
		d.EventName,
		d.EventType,
		d.TimeInfo,
		multiDay,
		d.ArrivalTime,
		d.Description,
		d.Example,
	)
}

const descriptionPromptTemplate = `Generate a professional, clear, and engaging event description based on the following information:

Event Name: %s
Event Type: %s
Event Category: %s
Location: %s
When: %s
Venue Type: %s
Recurring Information: %s
Target Audience: %s

Guidelines:
1. Start with a compelling introduction that clearly states the purpose of the event
2. Include all essential details (what, when, where, who should attend)
3. Highlight the benefits or value for participants
4. Speak directly to %s
5. Keep it concise (1-2 paragraphs)
6. Use professional, engaging language
7. Make sure all logistical information is clearly presented
8. End with a clear call to action inviting people to attend

Here is an example description for a similar type of event. Match its tone and structure, but do not copy its content:

%s

Format the description as a cohesive, flowing narrative that would be appealing to potential attendees.
Do not include headers or labels in the final description.`

const expectationsPromptTemplate = `Generate clear, detailed volunteer expectations for the following event:

Event Name: %s
Event Type: %s
When: %s
Multi-Day Event: %s
Suggested Volunteer Arrival: %s
Event Description: %s

Guidelines:
1. Start with a brief introduction thanking volunteers
2. Tell volunteers to arrive by the suggested arrival time above for check-in and briefing
3. Specify dress code appropriate for the event type (professional, business casual, etc.)
4. List any items volunteers should bring
5. Outline key responsibilities based on the event type
6. Include information about breaks, meals, or refreshments
7. If this is a multi-day event, note that volunteers should confirm which days they are scheduled
8. Define the anticipated end time for volunteer duties
9. Provide a contact information placeholder for questions

Here is an example volunteer expectations document for a similar type of event. Match its structure, but tailor the content to this event:

%s

Format the volunteer expectations as a clear, bulleted list with section headers.
Make sure the expectations are specific to the type of event.`
