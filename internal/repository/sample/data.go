package sample

import "github.com/dormlife/notice-service/internal/model"

// Notices is the fixture dataset served when no store is configured. It keeps
// the board browsable in degraded mode; writes against it are rejected.
var Notices = []model.Notice{
	{
		ID:          "1",
		Title:       "Dormitory Social Night",
		Description: "Join us for a night of fun and games!",
		Content: "We're excited to announce our monthly dormitory social night! This is a great opportunity to meet your fellow residents and have some fun.\n\n" +
			"**Event Details:**\n- Date: Saturday, January 20th\n- Time: 7:00 PM - 10:00 PM\n- Location: Common Room\n\n" +
			"**Activities Include:**\n- Board games and card games\n- Video game tournaments\n- Snacks and refreshments\n- Music and dancing\n\n" +
			"Everyone is welcome to attend! Please bring your student ID for entry.",
		Category:  model.CategoryEvents,
		Image:     "/placeholder-social.jpg",
		IsPinned:  true,
		CreatedAt: "2024-01-20",
	},
	{
		ID:          "2",
		Title:       "Maintenance Schedule",
		Description: "Check the schedule for upcoming maintenance.",
		Content: "**Important Maintenance Notice**\n\nPlease be advised of the following scheduled maintenance activities:\n\n" +
			"**Water System Maintenance**\n- Date: January 19th, 2024\n- Time: 9:00 AM - 2:00 PM\n- Affected Areas: Floors 2-5\n\n" +
			"**Elevator Maintenance**\n- Date: January 21st, 2024\n- Time: 8:00 AM - 12:00 PM\n- Note: Emergency elevator will remain operational\n\n" +
			"We apologize for any inconvenience. Please plan accordingly and contact maintenance at ext. 1234 for urgent issues.",
		Category:  model.CategoryMaintenance,
		Image:     "/placeholder-maintenance.jpg",
		IsPinned:  true,
		CreatedAt: "2024-01-19",
	},
	{
		ID:          "3",
		Title:       "New Study Room Rules",
		Description: "Please review the new rules for the study room.",
		Content: "**Updated Study Room Guidelines**\n\nEffective immediately, please observe the following rules for all study rooms:\n\n" +
			"**Booking System:**\n- Maximum reservation: 4 hours per day\n- Book through the online portal or front desk\n\n" +
			"**Quiet Hours:**\n- Silent study: 6:00 AM - 10:00 PM\n- Group discussions allowed in designated rooms only\n\n" +
			"Thank you for helping maintain a productive study environment for everyone!",
		Category:  model.CategoryAnnouncements,
		Image:     "/placeholder-study.jpg",
		CreatedAt: "2024-01-18",
	},
	{
		ID:          "4",
		Title:       "Upcoming Guest Speaker",
		Description: "Don't miss our guest speaker this week.",
		Content: "**Special Guest Speaker Event**\n\nWe're thrilled to announce that **Dr. Sarah Chen**, renowned author and career development expert, will be speaking at our dormitory this Thursday!\n\n" +
			"**Speaker Details:**\n- Topic: \"Navigating Your Career Path in the Digital Age\"\n- Date: Thursday, January 17th, 2024\n- Time: 7:30 PM - 9:00 PM\n- Location: Main Auditorium\n\n" +
			"Free for all residents! Register at the front desk or online. Light refreshments will be provided.",
		Category:  model.CategoryEvents,
		Image:     "/placeholder-speaker.jpg",
		CreatedAt: "2024-01-17",
	},
}
