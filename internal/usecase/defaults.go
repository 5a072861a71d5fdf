package usecase

import "resume-api/internal/domain"

// defaultResume builds the seed document used when the store is empty.
// Entry ids and timestamps are assigned the same way as for entries added
// through the service.
func (s *ResumeService) defaultResume() *domain.Resume {
	now := s.now().UTC()

	experience := []domain.ExperienceInput{
		{
			Position:    "Class B Transportation Driver",
			Company:     "Victory Driveaway, Inc.",
			Location:    "Laredo, TX",
			Duration:    "2/23 - present",
			Description: "Optimized contract opportunities for national transportation company. Optimized driveaway services over long distances while covering full expenses for operations. Performed everyday delivery services for various companies while maintaining contractual obligations with many driveaway companies. Maintained license, medical card and possess clean driving record with no DUI/DWI convictions, or moving violations while servicing.",
			Current:     true,
		},
		{
			Position:    "Technical Expert/Applecare Home Advisor",
			Company:     "Apple Inc.",
			Location:    "Houston, TX",
			Duration:    "10/19 – 2/23",
			Description: "Maintaining and updating support information and actions in the IT system. Uphold an in-depth understanding of systematic troubleshooting for iOS, iPad OS and Mac OS X. Deliver technical support at the Genius Bar for technical analysis and escalations. Worked with Applecare team to assist customers with iOS, iPadOS and watch resolutions.",
		},
		{
			Position:    "Building Automation Specialist II",
			Company:     "Fort Bend I.S.D.",
			Location:    "Stafford, TX",
			Duration:    "2/17 – 10/19",
			Description: "Perform work of considerable difficulty in the operation, maintenance, repair, and installation of building automation systems and HVAC controls for various school and administration buildings. Provided sophisticated electrical troubleshooting and repairs including wiring single/three phase motors.",
		},
		{
			Position:    "Systems Manager",
			Company:     "JBT Aerotech Services",
			Location:    "Houston, TX",
			Duration:    "2/15 – 2/17",
			Description: "Assisted in the efforts to build, design, maintain & troubleshoot parameters of an intelligent operations network to be implemented in modules utilized by entities of various airlines. Responsible for the configuration and management of an environment thru VM Workstations and Web Servers including Windows Server 2008 OS.",
		},
		{
			Position:    "Electrical Technician",
			Company:     "Abilities Unlimited, Inc.",
			Location:    "Houston, TX",
			Duration:    "10/12 - 02/15",
			Description: "Responsible for advanced inspecting, maintaining, and repairing various types of equipment to prolong the serviceable life of all equipment at George Bush IAH. Prepared maintenance schedules for equipment, vehicles, and facilities. Performed sophisticated electrical troubleshooting and repairs including wiring single/three phase motors.",
		},
		{
			Position:    "HVAC Technician/Instructor",
			Company:     "Houston Community College",
			Location:    "Houston, TX",
			Duration:    "8/11 - 10/12",
			Description: "Managed the operation and maintenance of all facilities and mechanical systems including audio visual, electrical, lighting, plumbing and HVAC systems for the six southeast campuses. Managed and maintained HVAC equipment. Adjunct instructor of introductory A/C and Refrigeration classes for Workforce Center within the Southeast College system.",
		},
		{
			Position:    "Rental Manager",
			Company:     "Mac Enthusiasts",
			Location:    "Los Angeles, CA",
			Duration:    "11/03 - 8/11",
			Description: "Performed sales, rental, delivery, installation and breakdown of Apple equipment for various clients including Fox, Paramount Studios and various directors and editors in Hollywood and Los Angeles, CA. Handled all rental department inventory and maintenance for authorized reseller/service provider of Apple computers.",
		},
		{
			Position:     "NOC Engineer/Capacity Planner",
			Company:      "Metricom Inc.",
			Location:     "Plano, TX",
			Duration:     "3/00 - 11/03",
			Description:  "Monitored and managed a nationwide wireless data network. Repaired network when system performance dropped below standard operating levels. Troubleshooting of network problems related to telecommunications, WAN circuits and TCP/IP routing topology.",
			Achievements: []string{"Technical Writing: Developed and implemented national standard for deployment of Wired Access Points in the Ricochet wireless data network."},
		},
		{
			Position:    "Lead Microcomputer Specialist",
			Company:     "Deloitte Consulting",
			Location:    "Houston, TX",
			Duration:    "10/97 - 3/00",
			Description: "Directed team of PC technicians in managing all facets of information technology for Big 5 financial consulting firm including sales, network implementation and maintenance. Sold and redesigned networks, built network servers, implemented Novell Intranetware v4.11 for new and existing clients. Supported 2,500 consulting professionals.",
		},
	}

	education := []domain.EducationInput{
		{Degree: "Electrical Engineering", Institution: "Prairie View A&M University", Location: "Prairie View, TX", Duration: "8/91 - 5/95"},
		{Degree: "Healthcare I.T.", Institution: "Capella University", Location: "Minneapolis, MN", Duration: "8/14 - 12/15"},
		{Degree: "Control and Instrumentation Engineering Technology", Institution: "UH Downtown", Location: "Houston, TX", Duration: "1/16 – 5/16"},
		{Degree: "Digital Media", Institution: "University of Houston", Location: "Central Houston, Sugar Land, TX", Duration: "9/16 – 5/19"},
		{Degree: "HIPAA Awareness for Couriers", Institution: "Integrity Medical Courier Training", Location: "integritydelivers.com", Duration: "9/24 – 9/25"},
		{Degree: "Bloodborne Pathogen Exposure Control", Institution: "Integrity Medical Courier Training", Location: "", Duration: "9/24 – 9/25"},
	}

	r := &domain.Resume{
		ID: s.newID(),
		PersonalInfo: domain.PersonalInfo{
			Name:        "Kyle J. Lynch",
			Email:       "kclynch@uh.edu",
			Phone:       "713.226.9038",
			LinkedInURL: "https://www.linkedin.com/in/kyle-lynch-5539318",
			Title:       "Facilities Coordinator & Technical Systems Professional",
			Location:    "Houston, TX",
		},
		Highlights: []string{
			"Experienced Facilities Coordinator with extensive background in building automation, HVAC systems, and technical infrastructure management",
			"Twenty years' experience in facilities operations, customer service coordination, and multi-system technical support across educational, corporate, and airport environments",
		},
		Skills: []string{
			"Network Troubleshooting",
			"IT Systems Management",
			"HVAC Systems",
			"Building Automation",
			"iOS/macOS Support",
			"Electrical Systems",
			"Technical Writing",
			"Team Leadership",
			"Transportation & Logistics",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	for i, in := range experience {
		r.Experience = append(r.Experience, domain.Experience{
			ID:           s.newID(),
			Position:     in.Position,
			Company:      in.Company,
			Location:     in.Location,
			Duration:     in.Duration,
			Description:  in.Description,
			Current:      in.Current,
			Achievements: in.Achievements,
			SortOrder:    i,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
	}
	for i, in := range education {
		r.Education = append(r.Education, domain.Education{
			ID:          s.newID(),
			Degree:      in.Degree,
			Institution: in.Institution,
			Location:    in.Location,
			Duration:    in.Duration,
			SortOrder:   i,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	return r
}
