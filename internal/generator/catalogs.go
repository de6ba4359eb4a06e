// Fixed example catalogs. These are data, not logic: sample texts shown to the
// model to anchor tone and structure for a given kind of event. Entry order is
// load-bearing (see Catalog).
package generator

// DescriptionExamples maps event-type keywords to sample event descriptions.
var DescriptionExamples = Catalog{
	{"Career Fair", careerFairDescriptionExample},
	{"STEM Activity", stemDescriptionExample},
	{"Workshop", workshopDescriptionExample},
	{"Networking", networkingDescriptionExample},
	{"Fundraiser", fundraiserDescriptionExample},
	{"Conference", conferenceDescriptionExample},
}

// VolunteerExamples maps event-type keywords to sample volunteer-expectation documents.
var VolunteerExamples = Catalog{
	{"Career Fair", careerFairVolunteerExample},
	{"STEM Activity", stemVolunteerExample},
	{"Workshop", workshopVolunteerExample},
	{"Networking", networkingVolunteerExample},
	{"Fundraiser", fundraiserVolunteerExample},
	{"Conference", conferenceVolunteerExample},
}

const careerFairDescriptionExample = `Connect with over 40 regional employers at the Spring Career Fair, hosted at the Riverside Convention Center on Saturday, March 8, 2025, 10:00 AM to 3:00 PM. Whether you are seeking your first internship, a new role, or simply exploring what is out there, this free event brings hiring managers from technology, healthcare, manufacturing, and public service under one roof. Bring copies of your resume and come ready to make an impression — on-site interviews will be available throughout the day.`

const stemDescriptionExample = `Spark curiosity at Discovery Day, a hands-on STEM experience for students in grades 4 through 8. From building bottle rockets to programming simple robots, every station is designed to let young scientists experiment, fail safely, and try again. Educators and families are welcome to participate alongside students. The event runs Saturday, April 12, 2025, 9:00 AM to 1:00 PM at the Northside Community Center, and all materials are provided free of charge.`

const workshopDescriptionExample = `Take your skills to the next level at the Effective Communication Workshop, an interactive half-day session for early- and mid-career professionals. Through small-group exercises and live feedback, you will practice structuring a message, reading a room, and handling difficult conversations with confidence. Space is limited to 30 participants to keep the session personal, so early registration is strongly encouraged.`

const networkingDescriptionExample = `Join us for an evening of conversation and connection at the Downtown Professionals Mixer. Meet peers from across the region's business community in a relaxed setting, with light refreshments provided. Whether you are growing a team, hunting for your next opportunity, or simply expanding your circle, you will leave with new contacts and fresh ideas. Business casual attire suggested.`

const fundraiserDescriptionExample = `Support a great cause at the Annual Community Gala, an evening of dinner, music, and a silent auction benefiting local youth programs. Every ticket purchased funds after-school tutoring, mentorship, and summer enrichment for students who need it most. Come for the celebration, stay for the impact — and help us reach this year's goal.`

const conferenceDescriptionExample = `The Regional Innovation Conference returns for its fifth year, bringing together practitioners, researchers, and students for two days of keynotes, panels, and hands-on breakout sessions. Explore emerging tools, compare notes with peers, and leave with practical takeaways you can apply immediately. Continental breakfast and lunch are included with registration.`

const careerFairVolunteerExample = `# Volunteer Expectations — Career Fair

## Arrival and Check-in
* Arrive 45 minutes before doors open for briefing and booth assignments
* Check in at the volunteer table near the main entrance

## Responsibilities
* Greet attendees and hand out venue maps and employer lists
* Direct job seekers to employer booths and the resume review station
* Restock materials and assist employers between sessions

## Dress Code
* Business casual; comfortable shoes recommended`

const stemVolunteerExample = `# Volunteer Expectations — STEM Activity

## Arrival and Check-in
* Arrive 45 minutes early for a station walkthrough and safety briefing
* Check in with the activity lead at the registration desk

## Responsibilities
* Run a hands-on activity station and guide students through each step
* Keep stations stocked and tidy between groups
* Encourage experimentation — let students try, fail, and retry safely

## Dress Code
* Casual; closed-toe shoes required at all activity stations`

const workshopVolunteerExample = `# Volunteer Expectations — Workshop

## Arrival and Check-in
* Arrive 45 minutes before the session for room setup
* Check in with the facilitator

## Responsibilities
* Set up seating, materials, and signage
* Manage the sign-in sheet and distribute handouts
* Assist the facilitator with timing and small-group logistics

## Dress Code
* Business casual`

const networkingVolunteerExample = `# Volunteer Expectations — Networking Event

## Arrival and Check-in
* Arrive 45 minutes early to help with room setup and name badges
* Check in with the event host

## Responsibilities
* Staff the welcome table and hand out name badges
* Make introductions and help solo attendees find conversation groups
* Monitor refreshments and flag restocks

## Dress Code
* Business casual`

const fundraiserVolunteerExample = `# Volunteer Expectations — Fundraiser

## Arrival and Check-in
* Arrive 45 minutes before guests for setup and role assignments
* Check in with the volunteer coordinator at the service entrance

## Responsibilities
* Greet and seat guests, manage coat check and auction tables
* Record auction bids and assist with checkout at close
* Help with teardown after the final guests depart

## Dress Code
* Semi-formal unless otherwise instructed`

const conferenceVolunteerExample = `# Volunteer Expectations — Conference

## Arrival and Check-in
* Arrive 45 minutes before registration opens each day you are scheduled
* Check in at the staff desk for your badge and daily assignment

## Responsibilities
* Staff registration, direct attendees between session rooms
* Support speakers with room logistics and timing cards
* Report venue issues to the operations lead

## Dress Code
* Business casual with provided staff lanyard`
