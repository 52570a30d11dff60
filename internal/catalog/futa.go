package catalog

import (
	"github.com/Emynex4real/innovateam-sub003/internal/types"
)

// Faculty names used by the built-in catalog.
const (
	FacultyComputing     = "School of Computing"
	FacultyEngineering   = "School of Engineering and Engineering Technology"
	FacultyPhysical      = "School of Physical Sciences"
	FacultyLife          = "School of Life Sciences"
	FacultyAgriculture   = "School of Agriculture and Agricultural Technology"
	FacultyEnvironmental = "School of Environmental Technology"
	FacultyEarth         = "School of Earth and Mineral Sciences"
	FacultyHealth        = "College of Health Sciences"
)

// Common requirement sets.
var (
	scienceOLevel = []string{"English Language", "Mathematics", "Physics", "Chemistry", "Biology/Agricultural Science"}
	healthOLevel  = []string{"English Language", "Mathematics", "Physics", "Chemistry", "Biology"}
	agricOLevel   = []string{"English Language", "Mathematics", "Chemistry", "Biology/Agricultural Science", "Physics/Economics/Geography"}
	envOLevel     = []string{"English Language", "Mathematics", "Physics", "Chemistry/Technical Drawing/Geography", "Biology/Economics/Fine Art"}

	engineeringUTME = []string{"English Language", "Mathematics", "Physics", "Chemistry"}
	computingUTME   = []string{"English Language", "Mathematics", "Physics", "Chemistry/Biology/Agricultural Science/Economics/Geography"}
	healthUTME      = []string{"English Language", "Biology", "Chemistry", "Physics"}
	lifeUTME        = []string{"English Language", "Biology", "Chemistry", "Mathematics/Physics"}
	agricUTME       = []string{"English Language", "Chemistry", "Biology/Agricultural Science", "Mathematics/Physics"}
	envUTME         = []string{"English Language", "Mathematics", "Physics", "Chemistry/Geography/Fine Art/Economics"}
)

func course(name, faculty string, cutoff, capacity int, olevel, utme, tags, careers []string) types.Course {
	return types.Course{
		Name:               name,
		Faculty:            faculty,
		Cutoff:             cutoff,
		Capacity:           capacity,
		OLevelRequirements: types.Requirements(olevel...),
		UTMERequirements:   types.Requirements(utme...),
		InterestTags:       tags,
		CareerProspects:    careers,
	}
}

// futaCourses is the built-in reference table. Tags are lowercase keywords
// matched against free-text interests.
func futaCourses() []types.Course {
	return []types.Course{
		// School of Computing
		course("Computer Science", FacultyComputing, 200, 250, scienceOLevel, computingUTME,
			[]string{"technology", "programming", "software", "computers", "data", "algorithms"},
			[]string{"Software Developer", "Data Scientist", "Systems Analyst"}),
		course("Cyber Security", FacultyComputing, 200, 120, scienceOLevel, computingUTME,
			[]string{"technology", "security", "networks", "computers", "hacking"},
			[]string{"Security Analyst", "Penetration Tester", "Network Administrator"}),
		course("Information Technology", FacultyComputing, 190, 150, scienceOLevel, computingUTME,
			[]string{"technology", "computers", "networks", "business", "data"},
			[]string{"IT Consultant", "Database Administrator", "Support Engineer"}),
		course("Software Engineering", FacultyComputing, 200, 120, scienceOLevel, computingUTME,
			[]string{"technology", "programming", "software", "design", "engineering"},
			[]string{"Software Engineer", "DevOps Engineer", "Product Engineer"}),

		// School of Engineering and Engineering Technology
		course("Mechanical Engineering", FacultyEngineering, 220, 200, scienceOLevel, engineeringUTME,
			[]string{"engineering", "machines", "design", "manufacturing", "automobiles"},
			[]string{"Mechanical Engineer", "Plant Engineer", "Automotive Engineer"}),
		course("Electrical and Electronics Engineering", FacultyEngineering, 230, 180, scienceOLevel, engineeringUTME,
			[]string{"engineering", "electronics", "power", "circuits", "technology"},
			[]string{"Electrical Engineer", "Power Systems Engineer", "Electronics Designer"}),
		course("Civil Engineering", FacultyEngineering, 220, 200, scienceOLevel, engineeringUTME,
			[]string{"engineering", "construction", "structures", "roads", "design"},
			[]string{"Civil Engineer", "Structural Engineer", "Project Manager"}),
		course("Computer Engineering", FacultyEngineering, 230, 120, scienceOLevel, engineeringUTME,
			[]string{"engineering", "computers", "electronics", "technology", "hardware"},
			[]string{"Hardware Engineer", "Embedded Systems Engineer", "Network Engineer"}),
		course("Chemical Engineering", FacultyEngineering, 210, 120, scienceOLevel, engineeringUTME,
			[]string{"engineering", "chemistry", "processes", "petroleum", "manufacturing"},
			[]string{"Process Engineer", "Petroleum Engineer", "Production Manager"}),
		course("Agricultural and Environmental Engineering", FacultyEngineering, 180, 100, scienceOLevel, engineeringUTME,
			[]string{"engineering", "agriculture", "environment", "machines", "irrigation"},
			[]string{"Agricultural Engineer", "Irrigation Engineer", "Environmental Consultant"}),
		course("Metallurgical and Materials Engineering", FacultyEngineering, 180, 90, scienceOLevel, engineeringUTME,
			[]string{"engineering", "materials", "metals", "chemistry", "manufacturing"},
			[]string{"Materials Engineer", "Quality Control Engineer", "Metallurgist"}),
		course("Mining Engineering", FacultyEngineering, 190, 80, scienceOLevel, engineeringUTME,
			[]string{"engineering", "mining", "minerals", "geology", "explosives"},
			[]string{"Mining Engineer", "Mine Manager", "Mineral Economist"}),

		// School of Physical Sciences
		course("Industrial Chemistry", FacultyPhysical, 180, 120, scienceOLevel, lifeUTME,
			[]string{"chemistry", "laboratory", "manufacturing", "research"},
			[]string{"Industrial Chemist", "Quality Control Analyst", "Research Scientist"}),
		course("Physics", FacultyPhysical, 160, 100, scienceOLevel, engineeringUTME,
			[]string{"physics", "research", "energy", "electronics"},
			[]string{"Physicist", "Lecturer", "Energy Analyst"}),
		course("Mathematics", FacultyPhysical, 150, 100, scienceOLevel, computingUTME,
			[]string{"mathematics", "numbers", "research", "data", "teaching"},
			[]string{"Mathematician", "Actuary", "Lecturer"}),
		course("Statistics", FacultyPhysical, 150, 100, scienceOLevel, computingUTME,
			[]string{"statistics", "data", "mathematics", "analysis"},
			[]string{"Statistician", "Data Analyst", "Market Researcher"}),

		// School of Life Sciences
		course("Biochemistry", FacultyLife, 200, 120, healthOLevel, lifeUTME,
			[]string{"biology", "chemistry", "research", "laboratory", "medicine"},
			[]string{"Biochemist", "Pharmaceutical Scientist", "Research Scientist"}),
		course("Microbiology", FacultyLife, 200, 120, healthOLevel, lifeUTME,
			[]string{"biology", "microorganisms", "laboratory", "research", "health"},
			[]string{"Microbiologist", "Public Health Scientist", "Quality Control Officer"}),
		course("Biotechnology", FacultyLife, 190, 80, healthOLevel, lifeUTME,
			[]string{"biology", "technology", "genetics", "research", "agriculture"},
			[]string{"Biotechnologist", "Genetic Engineer", "Research Scientist"}),

		// School of Agriculture and Agricultural Technology
		course("Agricultural Economics", FacultyAgriculture, 160, 120, agricOLevel, agricUTME,
			[]string{"agriculture", "economics", "business", "farming"},
			[]string{"Agricultural Economist", "Agribusiness Manager", "Policy Analyst"}),
		course("Animal Production and Health", FacultyAgriculture, 160, 100, agricOLevel, agricUTME,
			[]string{"agriculture", "animals", "livestock", "farming", "health"},
			[]string{"Animal Scientist", "Livestock Farm Manager", "Feed Consultant"}),
		course("Crop Soil and Pest Management", FacultyAgriculture, 160, 100, agricOLevel, agricUTME,
			[]string{"agriculture", "crops", "soil", "farming", "plants"},
			[]string{"Agronomist", "Soil Scientist", "Extension Officer"}),
		course("Fisheries and Aquaculture", FacultyAgriculture, 150, 80, agricOLevel, agricUTME,
			[]string{"agriculture", "fish", "water", "farming"},
			[]string{"Fisheries Officer", "Aquaculturist", "Marine Resource Manager"}),
		course("Forestry and Wood Technology", FacultyAgriculture, 150, 80, agricOLevel, agricUTME,
			[]string{"forestry", "trees", "environment", "wood", "conservation"},
			[]string{"Forester", "Wood Technologist", "Conservation Officer"}),

		// School of Environmental Technology
		course("Architecture", FacultyEnvironmental, 210, 100, envOLevel, envUTME,
			[]string{"architecture", "design", "buildings", "art", "drawing"},
			[]string{"Architect", "Urban Designer", "Interior Designer"}),
		course("Building", FacultyEnvironmental, 190, 100, envOLevel, envUTME,
			[]string{"construction", "buildings", "design", "management"},
			[]string{"Builder", "Construction Manager", "Site Engineer"}),
		course("Estate Management", FacultyEnvironmental, 180, 120, envOLevel, envUTME,
			[]string{"property", "business", "buildings", "valuation"},
			[]string{"Estate Surveyor", "Property Manager", "Valuer"}),
		course("Quantity Surveying", FacultyEnvironmental, 190, 100, envOLevel, envUTME,
			[]string{"construction", "costing", "buildings", "business"},
			[]string{"Quantity Surveyor", "Cost Engineer", "Contract Manager"}),
		course("Urban and Regional Planning", FacultyEnvironmental, 180, 100, envOLevel, envUTME,
			[]string{"planning", "cities", "environment", "design"},
			[]string{"Town Planner", "Environmental Consultant", "Transport Planner"}),

		// School of Earth and Mineral Sciences
		course("Applied Geology", FacultyEarth, 190, 100, scienceOLevel, lifeUTME,
			[]string{"geology", "rocks", "minerals", "earth", "petroleum"},
			[]string{"Geologist", "Petroleum Geoscientist", "Hydrogeologist"}),
		course("Marine Science and Technology", FacultyEarth, 170, 80, scienceOLevel, lifeUTME,
			[]string{"marine", "oceans", "water", "environment", "research"},
			[]string{"Marine Scientist", "Oceanographer", "Environmental Officer"}),

		// College of Health Sciences
		course("Medicine and Surgery", FacultyHealth, 280, 150, healthOLevel, healthUTME,
			[]string{"medicine", "health", "surgery", "anatomy", "biology", "doctor", "hospital"},
			[]string{"Medical Doctor", "Surgeon", "Public Health Physician"}),
		course("Nursing Science", FacultyHealth, 240, 80, healthOLevel, healthUTME,
			[]string{"nursing", "health", "patient", "hospital", "medicine", "care"},
			[]string{"Registered Nurse", "Nurse Educator", "Public Health Nurse"}),
		course("Human Anatomy", FacultyHealth, 220, 100, healthOLevel, healthUTME,
			[]string{"anatomy", "biology", "health", "medicine", "research"},
			[]string{"Anatomist", "Medical Researcher", "Lecturer"}),
		course("Physiology", FacultyHealth, 220, 100, healthOLevel, healthUTME,
			[]string{"physiology", "biology", "health", "medicine", "research"},
			[]string{"Physiologist", "Medical Researcher", "Sports Scientist"}),
	}
}
